package pricecache

// Entry закэшированный результат поиска цены.
// Price == nil означает, что цены нет (нужна ручная оценка) и это тоже кэшируется
type Entry struct {
	Price     *float64 `json:"price"`
	Duplicate bool     `json:"duplicate,omitempty"`
}
