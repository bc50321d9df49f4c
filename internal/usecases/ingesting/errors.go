package ingesting

import "errors"

var (
	ErrBusinessNotFound     = errors.New("negócio não encontrado")
	ErrUnsupportedFileType  = errors.New("tipo de arquivo não suportado, envie um CSV")
	ErrMissingColumns       = errors.New("colunas obrigatórias ausentes no arquivo")
	ErrEmptyFile            = errors.New("arquivo sem linhas de dados")
	ErrSquareNotConnected   = errors.New("negócio não conectado à Square")
	ErrSquareAlreadyLinked  = errors.New("negócio já conectado à Square")
)
