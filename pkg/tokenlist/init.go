package tokenlist

import (
	"github.com/diadata-org/dex-sdk-go/pkg/utils"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	loglevel, err := logrus.ParseLevel(utils.Getenv("LOG_LEVEL_TOKENLIST", "info"))
	if err != nil {
		log.Errorf("Parse log level: %v.", err)
		return
	}
	log.SetLevel(loglevel)
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
