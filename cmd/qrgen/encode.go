/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grkuntzmd/qrgen"
	"github.com/grkuntzmd/qrgen/internal/config"
)

var (
	encodeBinaryFile string
	encodeBorder     int
	encodeConfig     string
	encodeDark       string
	encodeECL        string
	encodeFormat     string
	encodeLight      string
	encodeOpen       bool
	encodeOut        string
	encodeScale      int
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text or a binary file as a QR code symbol",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeBinaryFile, "binary", "", "encode the contents of this file instead of text")
	encodeCmd.Flags().IntVar(&encodeBorder, "border", 0, "quiet zone width in modules")
	encodeCmd.Flags().StringVar(&encodeConfig, "config", "", "YAML file with render defaults")
	encodeCmd.Flags().StringVar(&encodeDark, "dark", "", "dark module color (#RRGGBB)")
	encodeCmd.Flags().StringVar(&encodeECL, "ecl", "", "error correction level: L, M, Q, or H")
	encodeCmd.Flags().StringVar(&encodeFormat, "format", "", "output format: svg, png, or txt")
	encodeCmd.Flags().StringVar(&encodeLight, "light", "", "light module color (#RRGGBB)")
	encodeCmd.Flags().BoolVar(&encodeOpen, "open", false, "open the rendered symbol in a browser")
	encodeCmd.Flags().StringVar(&encodeOut, "out", "", "output file (stdout when omitted)")
	encodeCmd.Flags().IntVar(&encodeScale, "scale", 0, "pixels per module for raster output")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadEncodeConfig(cmd)
	if err != nil {
		return err
	}

	ecl, err := qrgen.ParseECL(cfg.ECL)
	if err != nil {
		return err
	}

	var code *qrgen.QRCode
	switch {
	case encodeBinaryFile != "":
		data, err := os.ReadFile(encodeBinaryFile)
		if err != nil {
			return err
		}
		code, err = qrgen.EncodeBinary(data, ecl)
		if err != nil {
			return err
		}
	case len(args) == 1:
		code, err = qrgen.EncodeText(args[0], ecl)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either text or --binary is required")
	}

	out, err := renderOutput(code, cfg)
	if err != nil {
		return err
	}

	if encodeOpen {
		path := encodeOut
		if path == "" {
			f, err := os.CreateTemp("", "qrgen-*."+cfg.Format)
			if err != nil {
				return err
			}
			if _, err := f.Write(out); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			path = f.Name()
		}
		return browser.OpenFile(path)
	}

	if encodeOut == "" {
		_, err := os.Stdout.Write(out)
		return err
	}

	return os.WriteFile(encodeOut, out, 0o644)
}

// loadEncodeConfig merges the optional config file with explicitly set
// flags; flags win.
func loadEncodeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Defaults()
	if encodeConfig != "" {
		var err error
		if cfg, err = config.Load(encodeConfig); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("border") {
		cfg.Border = encodeBorder
	}
	if cmd.Flags().Changed("dark") {
		cfg.Dark = encodeDark
	}
	if cmd.Flags().Changed("ecl") {
		cfg.ECL = encodeECL
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = encodeFormat
	}
	if cmd.Flags().Changed("light") {
		cfg.Light = encodeLight
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = encodeScale
	}
	if encodeOut != "" && !cmd.Flags().Changed("format") {
		switch filepath.Ext(encodeOut) {
		case ".svg":
			cfg.Format = "svg"
		case ".png":
			cfg.Format = "png"
		case ".txt":
			cfg.Format = "txt"
		}
	}

	return cfg, cfg.Validate()
}

func renderOutput(code *qrgen.QRCode, cfg *config.Config) ([]byte, error) {
	switch cfg.Format {
	case "svg":
		s, err := code.ToSVGString(cfg.Border, true)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case "png":
		light, err := parseHexColor(cfg.Light)
		if err != nil {
			return nil, err
		}
		dark, err := parseHexColor(cfg.Dark)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := code.WritePNG(&buf, cfg.Scale, cfg.Border, light, dark); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "txt":
		warnNarrowTerminal(code.Size)
		return []byte(code.ToTerminalString()), nil
	}

	return nil, fmt.Errorf("unknown format %q", cfg.Format)
}

// warnNarrowTerminal tells the user when the symbol will wrap and become
// unscannable.
func warnNarrowTerminal(size int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	if width, _, err := term.GetSize(fd); err == nil && width < size+8 {
		fmt.Fprintf(os.Stderr, "warning: terminal is %d columns but the symbol needs %d\n", width, size+8)
	}
}

func parseHexColor(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("color must be #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color must be #RRGGBB, got %q", s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
