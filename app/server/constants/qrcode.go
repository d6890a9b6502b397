package constants

const (
	QRCodeMargin = 1 // 静区宽度（模块数）
	QRCodeScale  = 8 // 每个模块的像素数
)
