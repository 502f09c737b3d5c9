package service_test

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// newSilentLogger логгер без вывода для тестов
func newSilentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}
