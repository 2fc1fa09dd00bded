package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// Logger mengembalikan logger bersama untuk pemakaian langsung.
func Logger() *logrus.Logger {
	return logg
}

// LogEvent mencetak satu baris log standar module/action/request_id.
// Jangan log payload sensitif; message cukup ringkasan.
func LogEvent(requestID, module, action, message string) {
	logg.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}

// LogError seperti LogEvent tapi untuk kegagalan, dengan error asli disertakan.
func LogError(requestID, module, action string, err error) {
	logg.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Error(err.Error())
}
