// internal/common/aws/translate.go
package aws

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// languageCodes maps app language codes to the codes Translate expects. All
// supported Indian languages use matching codes today; the indirection keeps
// the mapping explicit if that ever diverges.
var languageCodes = map[string]string{
	"hi": "hi", "en": "en", "ta": "ta", "te": "te", "bn": "bn",
	"mr": "mr", "gu": "gu", "kn": "kn", "ml": "ml", "pa": "pa",
}

type TranslateClient struct {
	client *translate.Client
}

func NewTranslateClient(ctx context.Context, region string) (*TranslateClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &TranslateClient{client: translate.NewFromConfig(cfg)}, nil
}

// TranslateText translates between languages. Identical source and target,
// blank input, or a service error all return the input text unchanged: a
// failed translation must never block a response.
func (c *TranslateClient) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == targetLang || strings.TrimSpace(text) == "" {
		return text, nil
	}

	out, err := c.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(awsLanguageCode(sourceLang)),
		TargetLanguageCode: aws.String(awsLanguageCode(targetLang)),
	})
	if err != nil {
		return text, err
	}
	return aws.ToString(out.TranslatedText), nil
}

func awsLanguageCode(lang string) string {
	if code, ok := languageCodes[lang]; ok {
		return code
	}
	return lang
}
