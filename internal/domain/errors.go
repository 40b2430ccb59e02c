package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrMalformedSpecs    = errors.New("especificaciones malformadas")
	ErrImportRejected    = errors.New("importación rechazada")
	ErrPersistence       = errors.New("fallo de persistencia")
)
