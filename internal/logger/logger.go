// Package logger tags std log lines with the component that emitted them.
package logger

import (
	"fmt"
	"log"
)

func Info(component, message string, args ...interface{}) {
	log.Printf("[INFO] [%s] %s", component, format(message, args))
}

func Warn(component, message string, args ...interface{}) {
	log.Printf("[WARN] [%s] %s", component, format(message, args))
}

func Error(component, message string, err error) {
	if err != nil {
		log.Printf("[ERROR] [%s] %s: %v", component, message, err)
		return
	}
	log.Printf("[ERROR] [%s] %s", component, message)
}

func Fatal(component, message string, err error) {
	log.Fatalf("[FATAL] [%s] %s: %v", component, message, err)
}

func format(message string, args []interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf(message, args...)
}
