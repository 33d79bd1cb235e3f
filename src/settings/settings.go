package settings

import "sync"

type Arguments struct {
	// The file path to the data directory holding collection files
	DataDir string

	// Directory for journal files; defaults to <DataDir>/journal
	JournalDir string

	// Maximum size of a journal file in bytes before it rolls over
	MaxJournalFileSize int64

	// Strongly verbose logging
	Verbose bool

	// Enable debug mode
	Debug bool
}

var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the process-wide argument set. Flag parsing in main
// writes into this instance before anything else reads it.
func GetSettings() *Arguments {
	once.Do(func() {
		instance = &Arguments{
			DataDir:            "./datafiles",
			MaxJournalFileSize: 1000000,
		}
	})
	return instance
}
