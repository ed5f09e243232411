package errors

// Error message constants for the dart-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Manifest errors
	ErrMsgFailedToReadManifest  = "failed to read manifest"
	ErrMsgFailedToParseManifest = "failed to parse manifest"
	ErrMsgNoManifestFound       = "no pubspec.yaml found at or above %s"

	// Workspace errors
	ErrMsgBadWorkspacePattern = "failed to expand workspace pattern"

	// Directory processing errors
	ErrMsgFailedToFindDartFiles = "failed to find Dart files in directory"
	ErrMsgFilesWouldChange      = "%d files are not sorted"
	ErrMsgFilesFailedToProcess  = "%d files failed to process"

	// Info/warning messages
	InfoMsgNoDartFilesFound    = "No Dart files found in package: %s"
	InfoMsgProcessingPackage   = "Sorting %s (%d files)"
	InfoMsgSkippedUnparsable   = "Skipped (could not parse header): %s"
	InfoMsgErrorProcessing     = "Error processing %s: %v"
	InfoMsgWouldChange         = "Would sort: %s"
	InfoMsgSortedFile          = "Sorted: %s"
	InfoMsgSummary             = "%d sorted, %d already sorted, %d skipped"
)
