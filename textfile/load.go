package textfile

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/piecetable"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress is the message broadcast to subscribers after each loaded
// fragment.
type Progress struct {
	Path  string // file being loaded
	Bytes int64  // bytes loaded so far
	Total int64  // file size in bytes
}

// textFile represents an OS file which will be loaded as a piece table.
type textFile struct {
	path string
	info os.FileInfo
	file *os.File
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{path: name, info: fi, file: file}, nil
}

// defaultFragSize selects a fragment size appropriate for a file of the
// given byte size.
func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

// Loader loads text files into piece tables, broadcasting a Progress message
// to all subscribers after each loaded fragment.
//
// The zero value is not usable; create loaders with NewLoader. A loader may
// load any number of files; Close it when done to release subscribers.
type Loader struct {
	cast *caster.Caster
	opts []piecetable.Option
}

// NewLoader creates a loader. The options are handed to every table the
// loader builds.
func NewLoader(opts ...piecetable.Option) *Loader {
	return &Loader{
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		opts: opts,
	}
}

// Subscribe returns a channel on which the subscriber receives a Progress
// message per loaded fragment. ok is false if the loader has been closed.
//
// Subscribers should drain the channel promptly and call Unsubscribe when
// done.
func (l *Loader) Subscribe() (ch chan interface{}, ok bool) {
	return l.cast.Sub(nil, 1)
}

// Unsubscribe releases a subscription channel obtained from Subscribe.
func (l *Loader) Unsubscribe(ch chan interface{}) {
	l.cast.Unsub(ch)
}

// Close shuts down progress broadcasting and closes all subscriber channels.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads a file, which must be a regular text file, and builds a piece
// table from its content. Clients may indicate a recommended fragment length
// in bytes; a fragSize of 0 lets Load choose a sensible default based on the
// file size.
//
// Load is synchronous; progress broadcasts let clients observe it from
// another goroutine.
func (l *Loader) Load(name string, fragSize int64) (*piecetable.Table, error) {
	tf, err := openFile(name)
	if err != nil {
		tracer().Errorf("textfile: cannot open %q: %v", name, err)
		return nil, err
	}
	defer tf.file.Close()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(tf.info.Size())
	}
	tracer().Debugf("textfile: loading %q, %d bytes in fragments of %d",
		name, tf.info.Size(), fragSize)
	b := piecetable.NewBuilder(l.opts...)
	buf := make([]byte, fragSize)
	var loaded int64
	for {
		cnt, err := tf.file.Read(buf)
		if cnt > 0 {
			if aerr := b.AppendBytes(buf[:cnt]); aerr != nil {
				return nil, aerr
			}
			loaded += int64(cnt)
			l.cast.Pub(Progress{Path: name, Bytes: loaded, Total: tf.info.Size()})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("textfile: error loading fragment of %q: %v", name, err)
			return nil, err
		}
	}
	return b.Table()
}

// Load reads a file and builds a piece table from its content, without
// progress broadcasting. See Loader.Load.
func Load(name string, fragSize int64, opts ...piecetable.Option) (*piecetable.Table, error) {
	l := NewLoader(opts...)
	defer l.Close()
	return l.Load(name, fragSize)
}
