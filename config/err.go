package config

import (
	"github.com/ezrec/wh02/translate"
)

var f = translate.From

type ErrConfigType string

func (err ErrConfigType) Error() string {
	return f("'%v' has the wrong type", string(err))
}

type ErrConfigValue struct {
	Name  string
	Value int
}

func (err ErrConfigValue) Error() string {
	return f("%v %v out of range", err.Name, err.Value)
}

type ErrConfig struct {
	Name string
	Err  error
}

func (err ErrConfig) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err ErrConfig) Unwrap() error {
	return err.Err
}
