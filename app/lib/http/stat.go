package http

import (
	"errors"

	"golang.org/x/sys/unix"
)

// StatFile queries path afresh on every call. A missing file is reported via
// Exists rather than an error.
func StatFile(path string) (FileMetadata, error) {
	var st unix.Stat_t
	for {
		err := unix.Stat(path, &st)
		if err == nil {
			break
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR) {
			return FileMetadata{}, nil
		}
		return FileMetadata{}, err
	}

	mode := uint32(st.Mode)
	return FileMetadata{
		Exists:          true,
		IsRegular:       mode&unix.S_IFMT == unix.S_IFREG,
		OwnerReadable:   mode&unix.S_IRUSR != 0,
		OwnerExecutable: mode&unix.S_IXUSR != 0,
		Size:            st.Size,
	}, nil
}
