// Package imageprocessor проверяет и уменьшает логотипы компаний перед сохранением.
package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	// декодеры регистрируются в image.Decode
	_ "image/gif"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrNotAnImage - содержимое файла не декодируется как картинка
var ErrNotAnImage = errors.New("file is not a decodable image")

// ImageSize - максимальные размеры результата
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

// SizeLogo - логотип в карточке вакансии
var SizeLogo = ImageSize{Name: "logo", Width: 512, Height: 512}

// Result - нормализованная картинка
type Result struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// Processor handles image processing operations
type Processor struct {
	quality int // JPEG quality (1-100)
	maxSize ImageSize
}

func NewProcessor(quality int, maxSize ImageSize) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxSize.Width <= 0 || maxSize.Height <= 0 {
		maxSize = SizeLogo
	}
	return &Processor{
		quality: quality,
		maxSize: maxSize,
	}
}

// Normalize декодирует картинку и, если она больше maxSize, уменьшает
// с сохранением пропорций. JPEG остается JPEG, остальные форматы
// (png, gif, webp) пересохраняются в PNG.
func (p *Processor) Normalize(reader io.Reader) (*Result, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxSize.Width || bounds.Dy() > p.maxSize.Height {
		img = p.resize(img, p.maxSize.Width, p.maxSize.Height)
	}

	var buf bytes.Buffer
	res := &Result{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}

	if format == "jpeg" {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		res.ContentType, res.Ext = "image/jpeg", ".jpg"
	} else {
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		res.ContentType, res.Ext = "image/png", ".png"
	}

	res.Data = buf.Bytes()
	return res, nil
}

// resize вписывает картинку в maxWidth x maxHeight с сохранением пропорций
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
