package prompt

import "errors"

var ErrWritePrompt = errors.New("failed to write prompt file")
