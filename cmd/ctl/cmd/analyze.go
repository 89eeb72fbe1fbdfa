package cmd

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/jpfielding/jpegframe/pkg/jpeg/chroma"
	"github.com/jpfielding/jpegframe/pkg/jpeg/frame"
	"github.com/jpfielding/jpegframe/pkg/util"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze cobra command
func NewAnalyzeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the frame header of a JPEG file",
		Long:  "Scans the marker chain of a JPEG file, decodes the SOF segment, and displays frame geometry, component layout, and chroma subsampling.",
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, _ := cmd.Flags().GetString("uri")
			if uri == "" && len(args) > 0 {
				uri = args[0]
			}
			if uri == "" {
				return fmt.Errorf("source is required. Use --uri flag or provide as argument")
			}

			var in io.Reader
			uri = strings.TrimPrefix(uri, "file://")
			switch {
			case uri == "-":
				in = os.Stdin
			case strings.HasPrefix(uri, "http"):
				cl := &http.Client{
					Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
				}
				req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
				if err != nil {
					return fmt.Errorf("failed to create request: %v", err)
				}
				resp, err := cl.Do(req)
				if err != nil {
					return fmt.Errorf("failed to download: %v", err)
				}
				in = resp.Body
				defer resp.Body.Close()
			default:
				f, err := os.Open(uri)
				if err != nil {
					return fmt.Errorf("failed to open file: %v", err)
				}
				in = f
				defer f.Close()
			}

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}

			format, _ := cmd.Flags().GetString("format")
			return runAnalyze(ctx, data, format)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("uri", "u", "", "JPEG source: file path, http(s) URL, or - for stdin")
	pf.StringP("format", "f", "text", "output format (text|json)")
	return cmd
}

// analysis is the JSON shape of one analyzed frame header.
type analysis struct {
	Marker      string        `json:"marker"`
	SOFType     frame.SOFType `json:"sofType"`
	Header      *frame.Header `json:"header"`
	Subsampling string        `json:"chromaSubsampling"`
	ChromaMode  string        `json:"chromaMode,omitempty"`
	ChromaSize  *planeSize    `json:"chromaPlane,omitempty"`
	Fingerprint string        `json:"fingerprint"`
	PayloadMD5  string        `json:"payloadMd5"`
}

type planeSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// runAnalyze scans for the SOF segment and prints the decoded header
func runAnalyze(ctx context.Context, data []byte, format string) error {
	payload, marker, err := frame.FindSOF(data)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	hdr, err := frame.DecodeSOF(payload, marker)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	slog.DebugContext(ctx, "decoded SOF",
		slog.String("type", hdr.SOFType.Name),
		slog.Int("width", hdr.Width),
		slog.Int("height", hdr.Height),
		slog.Int("components", hdr.ComponentCount()))

	out := analysis{
		Marker:      fmt.Sprintf("0x%02X", marker),
		SOFType:     hdr.SOFType,
		Header:      hdr,
		Subsampling: hdr.ChromaSubsampling.String(),
		Fingerprint: util.HashUUID(hdr),
		PayloadMD5:  util.Md5ThenHex(payload),
	}

	// For Y/Cb/Cr frames, resolve the mode and size the subsampled planes.
	if hdr.ComponentCount() == 3 {
		y, cb, cr := hdr.Components[0], hdr.Components[1], hdr.Components[2]
		mode, err := chroma.DetermineMode(
			y.HorizSampling, y.VertSampling,
			cb.HorizSampling, cb.VertSampling,
			cr.HorizSampling, cr.VertSampling)
		if err == nil {
			w, h := chroma.ChromaDimensions(hdr.Width, hdr.Height, mode)
			out.ChromaMode = mode.Name.String()
			out.ChromaSize = &planeSize{Width: w, Height: h}
		}
	}

	if format == "json" {
		j, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		os.Stdout.Write(j)
		fmt.Println()
		return nil
	}

	fmt.Printf("Marker: %s (%s)\n", out.Marker, hdr.SOFType.Name)
	fmt.Printf("Coding: %s\n", hdr.SOFType.Coding)
	fmt.Printf("Progressive: %v  Lossless: %v  Differential: %v\n",
		hdr.SOFType.Progressive, hdr.SOFType.Lossless, hdr.SOFType.Differential)
	fmt.Printf("Precision: %d bits\n", hdr.Precision)
	fmt.Printf("Size: %dx%d\n", hdr.Width, hdr.Height)
	fmt.Printf("MCU: %dx%d px, %dx%d = %d total\n",
		hdr.MCUSize.Width, hdr.MCUSize.Height,
		hdr.MCUCount.Horizontal, hdr.MCUCount.Vertical, hdr.MCUCount.Total)
	fmt.Printf("Chroma subsampling: %s\n", hdr.ChromaSubsampling)
	if out.ChromaSize != nil {
		fmt.Printf("Chroma planes: %s, %dx%d\n", out.ChromaMode, out.ChromaSize.Width, out.ChromaSize.Height)
	}
	fmt.Printf("Components: %d\n", hdr.ComponentCount())
	for _, c := range hdr.Components {
		fmt.Printf("  id=%d sampling=%dx%d qtable=%d blocks/mcu=%d\n",
			c.ID, c.HorizSampling, c.VertSampling, c.QuantTable,
			frame.BlocksPerMCU(c, hdr.MaxSampling))
	}
	fmt.Printf("Fingerprint: %s\n", out.Fingerprint)
	fmt.Printf("Payload MD5: %s\n", out.PayloadMD5)
	return nil
}
