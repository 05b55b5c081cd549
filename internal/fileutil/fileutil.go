package fileutil

import "os"

// OwnerReadWrite is the file permission mode for merged schema output files
// that may describe private APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
