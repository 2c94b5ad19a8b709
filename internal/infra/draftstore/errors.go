package draftstore

import "errors"

var (
	// ErrLoadDraft возвращается при ошибке чтения черновика из Redis
	ErrLoadDraft = errors.New("draftstore: failed to load draft")

	// ErrSaveDraft возвращается при ошибке записи черновика в Redis
	ErrSaveDraft = errors.New("draftstore: failed to save draft")

	// ErrClearDraft возвращается при ошибке удаления черновика
	ErrClearDraft = errors.New("draftstore: failed to clear draft")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("draftstore: failed to encode value")
)
