package fixture

import (
	"crypto/sha1"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/chrispritchard/torgen/internal/torrent_files"
)

// Builds minimal torrent descriptors for use as test fixtures. The piece
// digests are fabricated from synthetic per-index labels, not from any real
// file content - the produced files parse cleanly but must never be used for
// actual download verification.

const (
	DefaultAnnounce = "http://tracker.test:6969/announce"

	DefaultSingleName  = "test.txt"
	DefaultSingleSize  = 1024
	DefaultPieceLength = 512

	DefaultMultiName = "testdir"

	// MultiPieceLength is pinned for multi-file fixtures; the multi entry
	// point deliberately takes no piece length parameter.
	MultiPieceLength = 512

	singleComment = "Test torrent for development"
	multiComment  = "Multi-file test torrent"

	// fixed timestamp keeps single-file fixtures byte-identical across runs
	fixedCreationDate = 1234567890
)

// DefaultFileSet is the file list multi-file mode falls back on when the
// caller supplies none.
func DefaultFileSet() []torrent_files.TorrentFile {
	return []torrent_files.TorrentFile{
		{Path: []string{"file1.txt"}, Length: 1000},
		{Path: []string{"subdir", "file2.txt"}, Length: 2000},
	}
}

// BuildSingleFile assembles a single-file descriptor. piece_length must be
// positive; zero trips the runtime's division fault, which is treated as a
// programming error rather than a user-facing condition.
func BuildSingleFile(name string, total_size, piece_length int) torrent_files.TorrentDescriptor {
	piece_count := (total_size + piece_length - 1) / piece_length

	return torrent_files.TorrentDescriptor{
		Announce:     DefaultAnnounce,
		Comment:      singleComment,
		CreationDate: fixedCreationDate,
		Info: torrent_files.InfoDictionary{
			Name:        name,
			PieceLength: piece_length,
			Pieces:      fabricate_pieces(piece_count),
			Length:      total_size,
		},
	}
}

// BuildMultiFile assembles a multi-file descriptor over the given entries,
// or over DefaultFileSet when none are supplied. Path segment order is
// preserved. No creation date is set in this mode.
func BuildMultiFile(name string, files []torrent_files.TorrentFile) torrent_files.TorrentDescriptor {
	// an empty set would otherwise degrade into the single-file shape with
	// a zero length, which is not a fixture anyone wants
	if len(files) == 0 {
		files = DefaultFileSet()
	}

	total_size := 0
	for _, f := range files {
		total_size += f.Length
	}
	piece_count := (total_size + MultiPieceLength - 1) / MultiPieceLength

	return torrent_files.TorrentDescriptor{
		Announce: DefaultAnnounce,
		Comment:  multiComment,
		Info: torrent_files.InfoDictionary{
			Name:        name,
			PieceLength: MultiPieceLength,
			Pieces:      fabricate_pieces(piece_count),
			Files:       files,
		},
	}
}

// fabrication is near-instant for fixture-sized inputs; the bar only appears
// for counts large enough to take noticeable time
const progressThreshold = 4096

// fabricate_pieces produces piece_count placeholder digests, each the SHA-1
// of the label "piece<i>". The blocks are valid 20-byte digests of nothing
// that exists, which is the point: fixtures, not real data.
func fabricate_pieces(piece_count int) string {
	var bar *progressbar.ProgressBar
	if piece_count >= progressThreshold {
		bar = progressbar.NewOptions(piece_count,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("fabricating pieces"),
			progressbar.OptionClearOnFinish(),
		)
	}

	var pieces strings.Builder
	pieces.Grow(piece_count * 20)
	for i := 0; i < piece_count; i++ {
		digest := sha1.Sum([]byte("piece" + strconv.Itoa(i)))
		pieces.Write(digest[:])
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return pieces.String()
}
