// Copyright 2025 Certen Protocol

package dbin

import (
	"bytes"
	"io"
	"testing"
)

func TestRoundTripV0(t *testing.T) {
	var buf bytes.Buffer
	header := Header{Version: V0, ContentType: "ETH", ContentVersion: "01"}

	if err := WriteAll(&buf, header, [][]byte{[]byte("test")}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := []byte{100, 98, 105, 110, 0, 69, 84, 72, 48, 49, 0, 0, 0, 4, 116, 101, 115, 116}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded bytes = %v, want %v", buf.Bytes(), want)
	}

	file, err := ReadAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if file.Header != header {
		t.Fatalf("header = %+v, want %+v", file.Header, header)
	}
	if len(file.Messages) != 1 || string(file.Messages[0]) != "test" {
		t.Fatalf("messages = %v, want [test]", file.Messages)
	}
}

func TestDecodeInvalidMagic(t *testing.T) {
	_, err := ReadAll(bytes.NewReader([]byte("nope")))
	if err == nil {
		t.Fatal("expected error for invalid magic bytes")
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magicBytes[:])
	buf.WriteByte(7)
	_, err := ReadAll(&buf)
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestDecodeV1(t *testing.T) {
	var buf bytes.Buffer
	header := Header{Version: V1, ContentType: "ETH2"}
	if err := WriteAll(&buf, header, [][]byte{[]byte("abc")}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	file, err := ReadAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if file.Header.ContentType != "ETH2" {
		t.Fatalf("content type = %q", file.Header.ContentType)
	}
	if string(file.Messages[0]) != "abc" {
		t.Fatalf("messages = %v", file.Messages)
	}
}

func TestConcatenatedFiles(t *testing.T) {
	var buf bytes.Buffer
	header := Header{Version: V0, ContentType: "ETH", ContentVersion: "01"}
	if err := WriteAll(&buf, header, [][]byte{[]byte("one"), []byte("two")}); err != nil {
		t.Fatalf("WriteAll first: %v", err)
	}
	if err := WriteAll(&buf, header, [][]byte{[]byte("three")}); err != nil {
		t.Fatalf("WriteAll second: %v", err)
	}

	file, err := ReadAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(file.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(file.Messages))
	}
	want := []string{"one", "two", "three"}
	for i, w := range want {
		if string(file.Messages[i]) != w {
			t.Fatalf("message %d = %q, want %q", i, file.Messages[i], w)
		}
	}
}

func TestConcatenatedFilesDifferingHeadersRejected(t *testing.T) {
	var buf bytes.Buffer
	h1 := Header{Version: V0, ContentType: "ETH", ContentVersion: "01"}
	h2 := Header{Version: V0, ContentType: "EOS", ContentVersion: "01"}
	if err := WriteAll(&buf, h1, [][]byte{[]byte("one")}); err != nil {
		t.Fatalf("WriteAll first: %v", err)
	}
	if err := WriteAll(&buf, h2, [][]byte{[]byte("two")}); err != nil {
		t.Fatalf("WriteAll second: %v", err)
	}

	_, err := ReadAll(bytes.NewReader(buf.Bytes()))
	if err != ErrDifferingVersions {
		t.Fatalf("err = %v, want ErrDifferingVersions", err)
	}
}

func TestUnexpectedEOFInsideFrame(t *testing.T) {
	var buf bytes.Buffer
	header := Header{Version: V0, ContentType: "ETH", ContentVersion: "01"}
	if err := encodeHeader(&buf, header); err != nil {
		t.Fatalf("encodeHeader: %v", err)
	}
	buf.Write([]byte{0, 0, 0, 10}) // declares 10 bytes, but none follow
	_, err := ReadAll(&buf)
	if err == nil {
		t.Fatal("expected unexpected-eof error")
	}
}

func TestCleanEOFAtFrameBoundary(t *testing.T) {
	var buf bytes.Buffer
	header := Header{Version: V0, ContentType: "ETH", ContentVersion: "01"}
	if err := WriteAll(&buf, header, [][]byte{[]byte("x")}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	dec, err := NewDecoder(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, err := dec.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("second Next err = %v, want io.EOF", err)
	}
}
