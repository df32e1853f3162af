package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/widgets/prompt"
)

var logger = zap.NewNop()

func setupLogging(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction(zap.IncreaseLevel(zap.WarnLevel))
	}
	if err != nil {
		return fmt.Errorf("formview: logger: %w", err)
	}
	logger = l
	form.SetLogger(l)
	prompt.SetLogger(l)
	return nil
}
