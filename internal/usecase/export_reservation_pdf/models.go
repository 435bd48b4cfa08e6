package export_reservation_pdf

// Response готовый PDF файл
type Response struct {
	FileName string
	Content  []byte
}
