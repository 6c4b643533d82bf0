package utils

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// IconImage 生成托盘图标位图：透明背景上居中绘制纯色方块
// 方块四周留 size/8 的透明边距
func IconImage(size int, bg color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	margin := size / 8
	rect := image.Rect(margin, margin, size-margin, size-margin)
	draw.Draw(img, rect, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return img
}

// EncodePNG 将位图编码为 PNG 字节
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeICO 将位图编码为单图 ICO 字节（PNG 压缩负载，Vista 及以上支持）
func EncodeICO(img image.Image) ([]byte, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	// 256 像素在目录项中记为 0
	if w >= 256 {
		w = 0
	}
	if h >= 256 {
		h = 0
	}

	var buf bytes.Buffer
	// ICONDIR: 保留字、类型（1=图标）、图像数
	_ = binary.Write(&buf, binary.LittleEndian, uint16(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	// ICONDIRENTRY
	buf.WriteByte(byte(w))
	buf.WriteByte(byte(h))
	buf.WriteByte(0) // 调色板色数
	buf.WriteByte(0) // 保留
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))  // 平面数
	_ = binary.Write(&buf, binary.LittleEndian, uint16(32)) // 位深
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(6+16)) // 负载偏移
	buf.Write(data)
	return buf.Bytes(), nil
}

// WriteTempICO 将位图写入临时 .ico 文件，返回路径与清理函数
// 调用方在图标加载完成后（无论成败）都应调用清理函数删除文件
func WriteTempICO(img image.Image) (string, func(), error) {
	data, err := EncodeICO(img)
	if err != nil {
		return "", nil, err
	}
	f, err := os.CreateTemp("", "krcalendar_*.ico")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
