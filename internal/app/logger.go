package app

import (
	"fmt"
	"log"
	"os"
)

var (
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
	debugLogger *log.Logger
)

// SetupLogging enables debug output when debug is set. Errors and warnings
// are always written to stderr.
func SetupLogging(debug bool) {
	if debug {
		debugLogger = log.New(os.Stdout, "debug: ", log.LstdFlags|log.Lmicroseconds)
	} else {
		debugLogger = nil
	}
}

func logError(format string, v ...interface{}) {
	errorLogger.Printf(format, v...)
}

func logWarn(format string, v ...interface{}) {
	errorLogger.Printf("warning: %s", fmt.Sprintf(format, v...))
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
