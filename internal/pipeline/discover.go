package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// mediaExtensions lists the containers ffmpeg can copy-remux with chapters
// and tags intact.
var mediaExtensions = func() map[string]bool {
	exts := strings.Fields(`
		.mkv .mp4 .m4v .mov .avi .wmv .flv .webm .ts .m2ts .mpg .mpeg .vob .ogv
		.mka .m4a .m4b .mp3 .flac .ogg .opus .wav .aac`)
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return set
}()

// IsMediaFile reports whether path has a supported media extension.
func IsMediaFile(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discovery is the result of scanning an episode tree.
type Discovery struct {
	Files   []string // Media files, sorted.
	Skipped []string // Regular files without a media extension, sorted.
}

// Discover lists the regular files exactly two levels below inputDir
// (<input>/<group>/<file>). Symlinks are followed at both levels. Names
// starting with "." are ignored, as a shell glob would.
func Discover(inputDir string) (Discovery, error) {
	var d Discovery
	groups, err := visibleEntries(inputDir)
	if err != nil {
		return d, err
	}
	for _, group := range groups {
		info, err := os.Stat(group)
		if err != nil {
			return d, err
		}
		if !info.IsDir() {
			continue
		}
		files, err := visibleEntries(group)
		if err != nil {
			return d, err
		}
		for _, path := range files {
			info, err := os.Stat(path)
			if err != nil {
				return d, err
			}
			if !info.Mode().IsRegular() {
				continue
			}
			if IsMediaFile(path) {
				d.Files = append(d.Files, path)
			} else {
				d.Skipped = append(d.Skipped, path)
			}
		}
	}
	sort.Strings(d.Files)
	sort.Strings(d.Skipped)
	return d, nil
}

func visibleEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
