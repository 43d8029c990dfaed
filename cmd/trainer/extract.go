package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/service"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Read InBody values from a photo or scan of the result sheet",
	Long: `Upload an InBody result sheet image and print the extracted values as JSON.

Accepted formats: ` + strings.Join(service.AllowedExtensions, ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		return runExtract(cmd.Context(), client, args[0], cmd.OutOrStdout())
	},
}

type extractor interface {
	ExtractFromImage(ctx context.Context, img service.Image) (*form.ExtractionResult, error)
}

func runExtract(ctx context.Context, c extractor, path string, w io.Writer) error {
	img, err := service.LoadImage(path)
	if err != nil {
		return err
	}
	res, err := c.ExtractFromImage(ctx, img)
	if err != nil {
		return errors.New(service.UserMessage(err))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
