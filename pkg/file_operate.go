package pkg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

var (
	ErrNoInput       = errors.New("no input file path")
	ErrInputNotExist = errors.New("input file not exist")
	ErrBinaryFormat  = errors.New("binary sii is not supported")
	ErrEncrypted     = errors.New("encrypted sii is not supported")
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadInput 读取输入文件, gzip/zlib 压缩的内容会被自动解压
func ReadInput(filePath string) (string, error) {
	if len(filePath) == 0 {
		return "", ErrNoInput
	}
	exist, err := CheckFileExist(filePath)
	if err != nil {
		return "", fmt.Errorf("check file exist: %w", err)
	}
	if !exist {
		return "", fmt.Errorf("%w: %s", ErrInputNotExist, filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	text, err := Inflate(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filePath, err)
	}
	return text, nil
}

// Inflate returns data as text, decompressing gzip or zlib streams. Binary
// and encrypted save files are rejected.
func Inflate(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte("BSII")):
		return "", ErrBinaryFormat
	case bytes.HasPrefix(data, []byte("ScsC")):
		return "", ErrEncrypted
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return readAllString(zr)
	case isZlibHeader(data):
		// A plain text file can start with a valid zlib header by chance.
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return string(data), nil
		}
		defer zr.Close()
		text, err := readAllString(zr)
		if err != nil {
			return string(data), nil
		}
		return text, nil
	}
	return string(data), nil
}

func isZlibHeader(data []byte) bool {
	if len(data) < 2 || data[0]&0x0f != 8 {
		return false
	}
	return (uint16(data[0])<<8|uint16(data[1]))%31 == 0
}

func readAllString(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateOutput 打开输出文件, 路径为空时写到 stdout
func CreateOutput(filePath string, stdout io.Writer) (io.WriteCloser, error) {
	if len(filePath) == 0 {
		return nopCloser{stdout}, nil
	}
	return os.Create(filePath)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
