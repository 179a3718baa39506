package entity

// Cliente representa el único recurso del servicio: un identificador generado por el
// almacenamiento (BIGSERIAL) y un texto obligatorio.
type Cliente struct {
	ID   int64
	Text string
}
