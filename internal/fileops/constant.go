package fileops

const (
	// existence checks run concurrently against the files API
	maxConcurrentLookups = 5
	defaultCommitMessage = "Apply assistant changes"
)
