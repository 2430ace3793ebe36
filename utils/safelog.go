// utils/safelog.go
//
// Logging que enmascara datos personales (DNI, CUIT, emails, teléfonos)
// cuando la API corre en modo release. Los datos de clientes de un
// estudio jurídico no pueden terminar en texto plano en los logs del
// hosting.

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
)

var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production"

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// DNI argentino: 7-8 dígitos, con o sin puntos de miles.
	dniRegex = regexp.MustCompile(`\b\d{1,2}\.?\d{3}\.?\d{3}\b`)

	// CUIT/CUIL: 2 dígitos, 8 dígitos, verificador.
	cuitRegex = regexp.MustCompile(`\b\d{2}-?\d{8}-?\d\b`)

	phoneRegex = regexp.MustCompile(`\b\d{2,4}[\s.-]\d{3,4}[\s.-]\d{4}\b`)

	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString enmascara los datos sensibles de una cadena en producción.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := input
	result = emailRegex.ReplaceAllString(result, "***@***.***")
	result = cuitRegex.ReplaceAllString(result, "**-********-*")
	result = dniRegex.ReplaceAllString(result, "**.***.***")
	result = phoneRegex.ReplaceAllString(result, "***-****")
	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		return id[:8] + "..."
	})

	return result
}

// MaskID acorta un UUID en producción (alcanza para correlacionar logs).
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

func SafeInfo(format string, args ...interface{}) {
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// LogMutation log una escritura sobre una entidad sin exponer datos.
func LogMutation(action, entity, id string) {
	log.Printf("[%s] %s - ID: %s", entity, action, MaskID(id))
}

// LogAuthAction log un intento de login.
func LogAuthAction(action, email string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}

	if IsProduction {
		log.Printf("[Auth] %s - Email: %s Status: %s", action, "***@***.***", status)
	} else {
		log.Printf("[Auth] %s - Email: %s Status: %s", action, email, status)
	}
}
