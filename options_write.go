package id3kit

// SaveOption configures behavior when saving files.
//
//	err := file.Save(
//	    id3kit.WithBackup(".bak"),
//	    id3kit.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // suffix for backup file (e.g. ".bak")
	validate        bool   // re-read after write to verify
	preserveModTime bool   // keep original modification time
	version         byte   // target ID3v2 version (3 or 4)
	writeID3v1      bool   // also write a trailing ID3v1 tag
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{version: 4}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file gets the suffix appended to the original filename:
// WithBackup(".bak") preserves "song.mp3" as "song.mp3.bak". An
// existing backup is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After saving, the file is re-opened and key fields are compared to
// the in-memory metadata. This adds overhead but provides confidence
// that the save operation succeeded.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time. Use this
// when updating metadata should not change the "modified" date.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithVersion selects the ID3v2 version to write: 3 for v2.3, 4 for
// v2.4 (the default). Other values are rejected at save time; writing
// v2.2 is not supported.
func WithVersion(version byte) SaveOption {
	return func(o *saveOptions) {
		o.version = version
	}
}

// WithID3v1 also writes a trailing 128-byte ID3v1 tag for players that
// read nothing else. Fields that do not fit the v1 layout are
// truncated or dropped.
func WithID3v1() SaveOption {
	return func(o *saveOptions) {
		o.writeID3v1 = true
	}
}
