package intelligence

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// Transcriber converts spoken audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// GoogleSpeechClient implements Transcriber on the Cloud Speech API.
// Audio must be 16kHz mono LINEAR16 WAV.
type GoogleSpeechClient struct {
	client *speech.Client
}

// NewGoogleSpeechClient builds a speech client from a service account
// key file.
func NewGoogleSpeechClient(ctx context.Context, credentialsFile string) (*GoogleSpeechClient, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("google service account file is not configured")
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	return &GoogleSpeechClient{client: client}, nil
}

func (g *GoogleSpeechClient) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if language == "" {
		language = "en-US"
	}

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}
	return joinTranscripts(resp), nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleSpeechClient) Close() error {
	return g.client.Close()
}

// joinTranscripts flattens the per-segment alternatives into one string.
func joinTranscripts(resp *speechpb.RecognizeResponse) string {
	var sb strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			sb.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(sb.String())
}
