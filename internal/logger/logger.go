package logger

import (
	"go.uber.org/zap"
)

// Init 初始化全局 zap 日志，之后通过 zap.L() 使用
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}
