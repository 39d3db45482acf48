package video

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
)

// StreamParams controls the rendered stream.
type StreamParams struct {
	DurationSeconds int
	FrameRate       int

	// When positive, the picture fades linearly to black over the last
	// FadeSeconds of the stream. Zero fades across the whole duration.
	FadeSeconds float64
}

func DefaultStreamParams() StreamParams {
	return StreamParams{
		DurationSeconds: 360,
		FrameRate:       30,
		FadeSeconds:     10,
	}
}

func (p StreamParams) validate() error {
	if p.DurationSeconds <= 0 {
		return fmt.Errorf("stream duration must be positive, got %d seconds", p.DurationSeconds)
	}
	if p.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", p.FrameRate)
	}
	return nil
}

// WriteStreamFile renders the frame as a YUV4MPEG2 file at path.
func WriteStreamFile(path string, frame *image.RGBA, params StreamParams) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stream file: %w", err)
	}
	defer out.Close()

	if err := WriteStream(out, frame, params); err != nil {
		return err
	}
	return out.Close()
}

// WriteStream repeats the frame for the stream duration, darkening it frame
// by frame once the fade starts. The output is YUV4MPEG2 with full-resolution
// chroma, playable by common tooling without a container.
func WriteStream(w io.Writer, frame *image.RGBA, params StreamParams) error {
	if err := params.validate(); err != nil {
		return err
	}

	width := frame.Bounds().Dx()
	height := frame.Bounds().Dy()
	totalFrames := params.DurationSeconds * params.FrameRate
	fadeStart := 0
	if params.FadeSeconds > 0 {
		fadeStart = int((float64(params.DurationSeconds) - params.FadeSeconds) * float64(params.FrameRate))
		if fadeStart < 0 {
			fadeStart = 0
		}
	}

	yPlane, uPlane, vPlane := toYCbCr(frame)
	faded := struct{ y, u, v []byte }{
		y: make([]byte, len(yPlane)),
		u: make([]byte, len(uPlane)),
		v: make([]byte, len(vPlane)),
	}

	buffered := bufio.NewWriterSize(w, 1<<20)
	if _, err := fmt.Fprintf(buffered, "YUV4MPEG2 W%d H%d F%d:1 Ip A1:1 C444\n", width, height, params.FrameRate); err != nil {
		return fmt.Errorf("write stream header: %w", err)
	}

	for count := 0; count < totalFrames; count++ {
		opacity := frameOpacity(count, fadeStart, totalFrames)
		fadePlanes(faded.y, yPlane, opacity, 16)
		fadePlanes(faded.u, uPlane, opacity, 128)
		fadePlanes(faded.v, vPlane, opacity, 128)

		if _, err := buffered.WriteString("FRAME\n"); err != nil {
			return fmt.Errorf("write frame header: %w", err)
		}
		for _, plane := range [][]byte{faded.y, faded.u, faded.v} {
			if _, err := buffered.Write(plane); err != nil {
				return fmt.Errorf("write frame plane: %w", err)
			}
		}
	}
	return buffered.Flush()
}

// frameOpacity follows a linear ramp from full brightness at the fade start
// down to black at the final frame.
func frameOpacity(frame, fadeStart, totalFrames int) int {
	if totalFrames <= fadeStart {
		return 255
	}
	opacity := 255 - (frame-fadeStart)*255/(totalFrames-fadeStart)
	if opacity < 0 {
		return 0
	}
	if opacity > 255 {
		return 255
	}
	return opacity
}

// fadePlanes blends each sample toward the plane's black level. Luma fades to
// 16, chroma to the neutral 128.
func fadePlanes(dst, src []byte, opacity int, blackLevel int) {
	for i, value := range src {
		dst[i] = byte(blackLevel + (int(value)-blackLevel)*opacity/255)
	}
}

// toYCbCr converts the frame to BT.601 full-resolution planes.
func toYCbCr(frame *image.RGBA) (yPlane, uPlane, vPlane []byte) {
	width := frame.Bounds().Dx()
	height := frame.Bounds().Dy()
	yPlane = make([]byte, width*height)
	uPlane = make([]byte, width*height)
	vPlane = make([]byte, width*height)

	i := 0
	for row := 0; row < height; row++ {
		offset := frame.PixOffset(frame.Bounds().Min.X, frame.Bounds().Min.Y+row)
		for col := 0; col < width; col++ {
			r := int(frame.Pix[offset])
			g := int(frame.Pix[offset+1])
			b := int(frame.Pix[offset+2])
			offset += 4

			yPlane[i] = clampByte((19595*r + 38470*g + 7471*b + 32768) >> 16)
			uPlane[i] = clampByte(((-11056*r - 21712*g + 32768*b + 32768) >> 16) + 128)
			vPlane[i] = clampByte(((32768*r - 27440*g - 5328*b + 32768) >> 16) + 128)
			i++
		}
	}
	return yPlane, uPlane, vPlane
}

func clampByte(value int) byte {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return byte(value)
}
