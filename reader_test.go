package piecetable

import (
	"errors"
	"io"
	"testing"
)

func TestReaderReadAll(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := editedTable(t)
	r := pt.Reader()
	if r.Size() != int64(pt.ByteLen()) {
		t.Fatalf("Size() = %d, ByteLen is %d", r.Size(), pt.ByteLen())
	}
	all, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(all) != pt.String() {
		t.Errorf("read %q", string(all))
	}
}

func TestReaderSmallBuffers(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := editedTable(t)
	r := pt.Reader()
	var all []byte
	buf := make([]byte, 3) // smaller than any piece boundary alignment
	for {
		n, err := r.Read(buf)
		all = append(all, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if string(all) != pt.String() {
		t.Errorf("read %q", string(all))
	}
}

func TestReaderReadAt(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "Hello World")
	r := pt.Reader()
	buf := make([]byte, 5)
	n, err := r.ReadAt(buf, 6)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadAt: %v", err)
	}
	if n != 5 || string(buf) != "World" {
		t.Errorf("ReadAt(6) read %q (%d bytes)", string(buf[:n]), n)
	}
	if _, err := r.ReadAt(buf, r.Size()); err != io.EOF {
		t.Errorf("ReadAt at end: expected io.EOF, got %v", err)
	}
	if _, err := r.ReadAt(buf, -1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("negative offset: expected ErrIllegalArguments, got %v", err)
	}
}

func TestReaderSeek(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "Hello World")
	r := pt.Reader()
	if _, err := r.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll after Seek: %v", err)
	}
	if string(rest) != "World" {
		t.Errorf("read %q after Seek", string(rest))
	}
	if pos, err := r.Seek(-5, io.SeekEnd); err != nil || pos != 6 {
		t.Errorf("SeekEnd: pos %d, err %v", pos, err)
	}
	if _, err := r.Seek(-1, io.SeekStart); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("negative position: expected ErrIllegalArguments, got %v", err)
	}
}

// The reader snapshots the document; later edits must not be observed.
func TestReaderSnapshotSemantics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	pt := mustTable(t, "abc")
	r := pt.Reader()
	if err := pt.Insert(3, "def"); err != nil {
		t.Fatalf("unexpected Insert error: %v", err)
	}
	all, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(all) != "abc" {
		t.Errorf("snapshot read %q, document is %q", string(all), pt.String())
	}
}
