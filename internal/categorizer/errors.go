package categorizer

import "errors"

var (
	ErrModelMissing        = errors.New("model artifact does not exist")
	ErrModelInvalid        = errors.New("model artifact is invalid")
	ErrUnknownStrategy     = errors.New("unknown categorizer strategy")
	ErrRankingUnsupported  = errors.New("the categorizer does not support ranking")
	ErrInsufficientClasses = errors.New("a classifier needs at least two classes")
)
