// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pngcodec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"io"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/gogpu/psx"
)

// testImage returns a width x height image with deterministic pseudo-random
// content, including non-opaque alpha.
func testImage(width, height int, seed uint64) *psx.ImageData {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	img := psx.NewImageData(width, height)
	for i := range img.Data {
		img.Data[i] = byte(r.IntN(256))
	}
	return img
}

// filterRow applies PNG filter ft to cur (the forward direction of unfilter).
func filterRow(ft byte, cur, prev []byte, bpp int) []byte {
	out := make([]byte, len(cur))
	for i := range cur {
		var a, b, c byte
		if i >= bpp {
			a = cur[i-bpp]
			c = prev[i-bpp]
		}
		b = prev[i]
		var pred byte
		switch ft {
		case filterSub:
			pred = a
		case filterUp:
			pred = b
		case filterAverage:
			pred = byte((int(a) + int(b)) / 2)
		case filterPaeth:
			pred = paeth(a, b, c)
		}
		out[i] = cur[i] - pred
	}
	return out
}

// streamDesc describes a hand-built PNG stream for decoder tests.
type streamDesc struct {
	width, height int
	bitDepth      byte
	colorType     byte
	filters       func(row int) byte // filter per row
	idatSplits    int                // number of IDAT chunks (>= 1)
	skipIHDR      bool
	extraChunk    bool // insert an ancillary tEXt chunk
}

func buildPNG(t *testing.T, img *psx.ImageData, s streamDesc) []byte {
	t.Helper()

	stride := img.Width * 4
	var raw bytes.Buffer
	prev := make([]byte, stride)
	for y := range img.Height {
		ft := byte(0)
		if s.filters != nil {
			ft = s.filters(y)
		}
		cur := img.Data[y*stride : (y+1)*stride]
		raw.WriteByte(ft)
		raw.Write(filterRow(ft, cur, prev, 4))
		prev = cur
	}

	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	out.Write(signature[:])
	if !s.skipIHDR {
		var ihdr [ihdrLength]byte
		binary.BigEndian.PutUint32(ihdr[0:4], uint32(s.width))
		binary.BigEndian.PutUint32(ihdr[4:8], uint32(s.height))
		ihdr[8] = s.bitDepth
		ihdr[9] = s.colorType
		writeChunk(&out, chunkIHDR, ihdr[:])
	}
	if s.extraChunk {
		writeChunk(&out, "tEXt", []byte("Comment\x00built by test"))
	}
	parts := max(s.idatSplits, 1)
	data := z.Bytes()
	size := (len(data) + parts - 1) / parts
	for len(data) > 0 {
		n := min(size, len(data))
		writeChunk(&out, chunkIDAT, data[:n])
		data = data[n:]
	}
	writeChunk(&out, chunkIEND, nil)
	return out.Bytes()
}

func rgbaStream(img *psx.ImageData) streamDesc {
	return streamDesc{width: img.Width, height: img.Height, bitDepth: 8, colorType: 6}
}

func TestEncodeDecodeSinglePixel(t *testing.T) {
	img := &psx.ImageData{Data: []byte{255, 0, 128, 255}, Width: 1, Height: 1}

	enc, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Width != 1 || got.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", got.Width, got.Height)
	}
	if !bytes.Equal(got.Data, img.Data) {
		t.Errorf("Data = %v, want %v", got.Data, img.Data)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"2x2", 2, 2},
		{"odd 17x5", 17, 5},
		{"single row", 256, 1},
		{"single column", 1, 256},
		{"square 64", 64, 64},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := testImage(tt.width, tt.height, uint64(i+1))
			for _, level := range []CompressionLevel{DefaultCompression, NoCompression, BestSpeed, BestCompression} {
				enc := Encoder{CompressionLevel: level}
				data, err := enc.Encode(img)
				if err != nil {
					t.Fatalf("Encode(level %d) error = %v", level, err)
				}
				got, err := Decode(data)
				if err != nil {
					t.Fatalf("Decode(level %d) error = %v", level, err)
				}
				if got.Width != tt.width || got.Height != tt.height {
					t.Errorf("size = %dx%d, want %dx%d", got.Width, got.Height, tt.width, tt.height)
				}
				if !bytes.Equal(got.Data, img.Data) {
					t.Errorf("level %d: decoded data differs from input", level)
				}
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		img     *psx.ImageData
		wantErr error
	}{
		{"short data", &psx.ImageData{Data: make([]byte, 15), Width: 2, Height: 2}, ErrSizeMismatch},
		{"long data", &psx.ImageData{Data: make([]byte, 17), Width: 2, Height: 2}, ErrSizeMismatch},
		{"nil data", &psx.ImageData{Width: 1, Height: 1}, ErrSizeMismatch},
		{"zero width", &psx.ImageData{Width: 0, Height: 4}, ErrInvalidDimensions},
		{"negative height", &psx.ImageData{Width: 4, Height: -1}, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.img)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Encode() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, psx.ErrValidation) {
				t.Errorf("Encode() error = %v, want ErrValidation class", err)
			}
		})
	}
}

func TestEncodeMinimalShape(t *testing.T) {
	img := testImage(5, 3, 7)
	data, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}

	var types []string
	var idat []byte
	pos := len(signature)
	for pos < len(data) {
		n := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		types = append(types, typ)
		if typ == chunkIDAT {
			idat = data[pos+8 : pos+8+n]
		}
		if typ == chunkIHDR {
			body := data[pos+8 : pos+8+n]
			if body[8] != 8 || body[9] != 6 || body[10] != 0 || body[11] != 0 || body[12] != 0 {
				t.Errorf("IHDR tail = %v, want [8 6 0 0 0]", body[8:])
			}
		}
		pos += 12 + n
	}
	want := []string{chunkIHDR, chunkIDAT, chunkIEND}
	if len(types) != len(want) {
		t.Fatalf("chunks = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("chunks = %v, want %v", types, want)
		}
	}

	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	stride := img.Width*4 + 1
	if len(raw) != stride*img.Height {
		t.Fatalf("raw length = %d, want %d", len(raw), stride*img.Height)
	}
	for y := range img.Height {
		if raw[y*stride] != filterNone {
			t.Errorf("row %d filter = %d, want 0", y, raw[y*stride])
		}
	}
}

func TestEncodeReadableByStandardDecoder(t *testing.T) {
	img := testImage(31, 9, 3)
	data, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}

	std, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("image/png Decode() error = %v", err)
	}
	nrgba, ok := std.(*image.NRGBA)
	if !ok {
		t.Fatalf("image/png decoded %T, want *image.NRGBA", std)
	}
	if !bytes.Equal(nrgba.Pix, img.Data) {
		t.Error("image/png decoded pixels differ from input")
	}
}

func TestDecodeFilterTypes(t *testing.T) {
	tests := []struct {
		name    string
		filters func(row int) byte
	}{
		{"none", func(int) byte { return filterNone }},
		{"sub", func(int) byte { return filterSub }},
		{"up", func(int) byte { return filterUp }},
		{"average", func(int) byte { return filterAverage }},
		{"paeth", func(int) byte { return filterPaeth }},
		{"mixed", func(row int) byte { return byte(row % 5) }},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := testImage(13, 10, uint64(100+i))
			desc := rgbaStream(img)
			desc.filters = tt.filters
			got, err := Decode(buildPNG(t, img, desc))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(got.Data, img.Data) {
				t.Error("decoded data differs from input")
			}
		})
	}
}

func TestDecodeStandardEncoderOutput(t *testing.T) {
	// image/png picks filters adaptively per row; a translucent pixel forces
	// color type 6 instead of RGB.
	src := image.NewNRGBA(image.Rect(0, 0, 40, 24))
	for y := range 24 {
		for x := range 40 {
			o := src.PixOffset(x, y)
			src.Pix[o+0] = byte(x * 6)
			src.Pix[o+1] = byte(y * 10)
			src.Pix[o+2] = byte(x*y + 3)
			src.Pix[o+3] = byte(255 - x)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	got, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Width != 40 || got.Height != 24 {
		t.Fatalf("size = %dx%d, want 40x24", got.Width, got.Height)
	}
	if !bytes.Equal(got.Data, src.Pix) {
		t.Error("decoded data differs from image/png input")
	}
}

func TestDecodeSplitIDATAndAncillaryChunks(t *testing.T) {
	img := testImage(20, 20, 42)
	desc := rgbaStream(img)
	desc.idatSplits = 4
	desc.extraChunk = true
	desc.filters = func(row int) byte { return byte((row + 2) % 5) }

	got, err := Decode(buildPNG(t, img, desc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got.Data, img.Data) {
		t.Error("decoded data differs from input")
	}
}

func TestDecodeErrors(t *testing.T) {
	img := testImage(4, 4, 9)
	valid, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}

	corruptCRC := bytes.Clone(valid)
	corruptCRC[len(signature)+8+ihdrLength] ^= 0xff // first byte of IHDR CRC

	gray := rgbaStream(img)
	gray.colorType = 0
	deep := rgbaStream(img)
	deep.bitDepth = 16
	noIHDR := rgbaStream(img)
	noIHDR.skipIHDR = true
	zeroSize := rgbaStream(img)
	zeroSize.width = 0
	badFilter := rgbaStream(img)
	badFilter.filters = func(int) byte { return 5 }

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrInvalidSignature},
		{"short", []byte{0x89, 'P', 'N'}, ErrInvalidSignature},
		{"wrong signature", append([]byte("GIF89a\x00\x00"), valid[8:]...), ErrInvalidSignature},
		{"grayscale", buildPNG(t, img, gray), ErrUnsupportedFormat},
		{"16-bit", buildPNG(t, img, deep), ErrUnsupportedFormat},
		{"no IHDR", buildPNG(t, img, noIHDR), ErrMissingIHDR},
		{"signature only", signature[:], ErrMissingIHDR},
		{"zero width", buildPNG(t, img, zeroSize), ErrMissingIHDR},
		{"bad checksum", corruptCRC, ErrChecksum},
		{"truncated chunk", valid[:len(valid)-20], ErrTruncated},
		{"unknown filter", buildPNG(t, img, badFilter), ErrUnknownFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, psx.ErrFormat) {
				t.Errorf("Decode() error = %v, want ErrFormat class", err)
			}
		})
	}
}

func TestDecodeShortImageData(t *testing.T) {
	// Header claims 4 rows but IDAT only carries 2.
	img := testImage(4, 2, 11)
	desc := rgbaStream(img)
	desc.height = 4

	_, err := Decode(buildPNG(t, img, desc))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Decode() error = %v, want ErrTruncated", err)
	}
}

func TestDecodeLargeDeclaredSizeTruncated(t *testing.T) {
	// 16384x16384 header (1 GiB of RGBA) backed by a single row of data.
	img := testImage(1, 1, 13)
	desc := rgbaStream(img)
	desc.width, desc.height = 16384, 16384
	data := buildPNG(t, img, desc)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := Decode(data)
	runtime.ReadMemStats(&after)

	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Decode() error = %v, want ErrTruncated", err)
	}
	const limit = 64 << 20
	if got := after.TotalAlloc - before.TotalAlloc; got > limit {
		t.Errorf("Decode() allocated %d bytes for a %d-byte input, want <= %d", got, len(data), limit)
	}
}

func TestDecodeRejectsOversizedHeader(t *testing.T) {
	img := testImage(1, 1, 14)
	desc := rgbaStream(img)
	desc.width, desc.height = 16384, 16385

	_, err := Decode(buildPNG(t, img, desc))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestPaeth(t *testing.T) {
	tests := []struct {
		a, b, c, want uint8
	}{
		{0, 0, 0, 0},
		{10, 20, 10, 20}, // p=20: pb=0
		{20, 10, 10, 20}, // p=20: pa=0
		{10, 10, 20, 10}, // p=0: pa=pb=10, prefers a
		{100, 50, 200, 50},
		{255, 255, 0, 255},
	}
	for _, tt := range tests {
		if got := paeth(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("paeth(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}
