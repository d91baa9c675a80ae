package compiler

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

const pamPrefix = "libpam_"

// placeManPage installs a page under man<N>, N being the trailing digit of
// the page extension
func placeManPage(entry *types.InstallEntry, mandir string) (string, bool, error) {
	if isDirectory(entry.Source) {
		return "", false, errors.New(errors.ErrInvalidEntry, "the man entry cannot be a directory")
	}

	name := entry.FileName()
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", false, errors.Newf(errors.ErrInvalidEntry, "unable to get extension of file %q", name)
	}

	section := ext[len(ext)-1]
	if section < '1' || section > '8' {
		return "", false, errors.Newf(errors.ErrInvalidEntry,
			"the extension of man page %q must end with a section number between 1 and 8", name)
	}

	return filepath.Join(mandir, "man"+string(section)), true, nil
}

// placeTerminfo buckets an entry by the lowercased first character of its
// file name
func placeTerminfo(entry *types.InstallEntry, terminfodir string) (string, bool, error) {
	if isDirectory(entry.Source) {
		return "", false, errors.New(errors.ErrInvalidEntry, "the terminfo entry cannot be a directory")
	}

	name := entry.FileName()
	initial, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return "", false, errors.Newf(errors.ErrInvalidEntry, "terminfo entry %q contains an empty filename", entry.Source)
	}

	return filepath.Join(terminfodir, string(unicode.ToLower(initial))), true, nil
}

// placePamModule names libpam_foo.so as pam_foo.so. Other modules need an
// explicit destination and are skipped without one.
func placePamModule(entry *types.InstallEntry, pamdir string) (string, bool, error) {
	if entry.Destination != "" {
		return pamdir, true, nil
	}

	name := entry.FileName()
	if strings.HasPrefix(name, pamPrefix) {
		entry.Destination = strings.TrimPrefix(name, "lib")
		return pamdir, true, nil
	}

	logger := logging.GetLogger("compiler")
	logger.Debug().
		Str("source", entry.Source).
		Msg("Skipping PAM module without destination")
	return "", false, nil
}

func isDirectory(p string) bool {
	return strings.HasSuffix(p, "/")
}
