package models

import (
	"time"

	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// Source источник данных результата загрузки каталога
type Source string

const (
	// SourceRemote каталог получен из удаленного хранилища
	SourceRemote Source = "remote"
	// SourceCache каталог взят из кеша последнего удачного снимка
	SourceCache Source = "cache"
	// SourceNoData удаленное хранилище недоступно и кеш пуст
	SourceNoData Source = "no_data"
	// SourceError и удаленное хранилище, и кеш вернули ошибку
	SourceError Source = "error"
)

// Result результат загрузки каталога с оценкой свежести
// Возвращается всегда, в том числе при полном отказе источников:
// вызывающая сторона показывает то, что есть, и метку свежести
type Result struct {
	Items      []domain.CatalogItem `json:"items"`
	LastUpdate *time.Time           `json:"lastUpdate"`
	IsFresh    bool                 `json:"isFresh"`
	Source     Source               `json:"source"`
}
