// internal/common/aws/polly.go
package aws

import (
	"context"
	"encoding/base64"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
)

// pollyMaxChars is the Polly synthesis input limit.
const pollyMaxChars = 3000

type PollyClient struct {
	client *polly.Client
	voice  string
}

func NewPollyClient(ctx context.Context, region, voice string) (*PollyClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	if voice == "" {
		voice = "Aditi" // covers Hindi and Indian English
	}
	return &PollyClient{client: polly.NewFromConfig(cfg), voice: voice}, nil
}

// Synthesize converts text to base64-encoded MP3 audio.
func (c *PollyClient) Synthesize(ctx context.Context, text string) (string, error) {
	runes := []rune(text)
	if len(runes) > pollyMaxChars {
		text = string(runes[:pollyMaxChars])
	}

	out, err := c.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: pollytypes.OutputFormatMp3,
		VoiceId:      pollytypes.VoiceId(c.voice),
		Engine:       pollytypes.EngineStandard,
	})
	if err != nil {
		return "", err
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(audio), nil
}
