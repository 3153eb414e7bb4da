// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package signature

var builtinEntries = []Entry{
	{Signature: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, Label: "PNG image"},
	{Signature: []byte{0xFF, 0xD8, 0xFF}, Label: "JPEG image"},
	{Signature: []byte("GIF87a"), Label: "GIF image (GIF87a)"},
	{Signature: []byte("GIF89a"), Label: "GIF image (GIF89a)"},
	{Signature: []byte("%PDF"), Label: "PDF document"},
	{Signature: []byte{0x1F, 0x8B, 0x08}, Label: "GZIP compressed archive"},
	{Signature: []byte{'P', 'K', 0x03, 0x04}, Label: "ZIP/JAR/DOCX/XLSX/ODT archive"},
	{Signature: []byte{'P', 'K', 0x05, 0x06}, Label: "ZIP archive (empty)"},
	{Signature: []byte{'P', 'K', 0x07, 0x08}, Label: "ZIP archive (spanned)"},
	{Signature: []byte{0x7F, 'E', 'L', 'F'}, Label: "ELF executable"},
	{Signature: []byte("MZ"), Label: "Windows PE executable (MZ)"},
	{Signature: []byte("BM"), Label: "BMP image"},
	{Signature: []byte("OggS"), Label: "Ogg container"},
	{Signature: []byte("%!"), Label: "PostScript / EPS"},
	{Signature: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}, Label: "7-Zip archive"},
	{Signature: []byte{'R', 'a', 'r', '!', 0x1A, 0x07, 0x00}, Label: "RAR archive (v1.5)"},
	{Signature: []byte{'R', 'a', 'r', '!', 0x1A, 0x07, 0x01, 0x00}, Label: "RAR archive (v5)"},
	{Signature: []byte("CWS"), Label: "Shockwave Flash (SWF; compressed)"},
	{Signature: []byte("FWS"), Label: "Shockwave Flash (SWF)"},
	{Signature: []byte("ZWS"), Label: "Shockwave Flash (SWF; LZMA)"},
	{Signature: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, Label: "Microsoft Compound File (OLE)"},
}

// Builtin returns a fresh registry holding the built-in signature table.
func Builtin() *Registry {
	r := NewRegistry()
	for _, e := range builtinEntries {
		r.Add(e.Signature, e.Label)
	}
	return r
}
