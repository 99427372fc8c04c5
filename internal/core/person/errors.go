package person

import "errors"

var (
	// ErrPersonNotFound は指定された名前の人員が存在しない場合に返却されます。
	ErrPersonNotFound = errors.New("person: no person exists with that name")
	// ErrPersonAlreadyExists は同名の人員が既に存在する場合に返却されます。
	ErrPersonAlreadyExists = errors.New("person: a person already exists with that name")
	// ErrInvalidName は名前が不正な場合に返却されます。
	ErrInvalidName = errors.New("person: invalid name")
	// ErrInvalidPageSize はページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("person: invalid page size")
	// ErrInvalidPageToken はページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("person: invalid page token")
)
