package finance

import (
	"errors"
	"fmt"
)

var errEndBeforeStart = errors.New("la fecha final es anterior a la inicial")

// EmptyResultError signals that a grouped report has no qualifying records.
// Callers surface it as "nothing found for the selected range", not as a
// server fault.
type EmptyResultError struct {
	Msg string
}

func (e EmptyResultError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "No existen transportes en las fechas seleccionadas"
}

// InvalidWindowError marks malformed date input reaching the window
// resolver. It is propagated immediately, never recovered.
type InvalidWindowError struct {
	Field string
	Err   error
}

func (e InvalidWindowError) Error() string {
	if e.Field == "" {
		return "rango de fechas inválido"
	}
	return fmt.Sprintf("rango de fechas inválido: %s", e.Field)
}

func (e InvalidWindowError) Unwrap() error { return e.Err }

func IsEmptyResult(err error) bool {
	var target EmptyResultError
	return errors.As(err, &target)
}

func IsInvalidWindow(err error) bool {
	var target InvalidWindowError
	return errors.As(err, &target)
}
