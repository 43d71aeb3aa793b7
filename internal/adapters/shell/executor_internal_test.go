package shell

import (
	"testing"

	"go.trai.ch/microbench/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogWriter_SplitsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Info("first"),
		log.EXPECT().Info("second"),
		log.EXPECT().Info("partial"),
	)

	w := &logWriter{logger: log, level: levelInfo}
	_, _ = w.Write([]byte("first\r\nsec"))
	_, _ = w.Write([]byte("ond\npartial"))
	_ = w.Close()
}

func TestLogWriter_WarnLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("oops")

	w := &logWriter{logger: log, level: levelWarn}
	_, _ = w.Write([]byte("oops\n"))
	_ = w.Close()
}
