package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/domain"
)

// Fixed rendering parameters. The render backend composits stills over
// the narration track; the service never tunes these per call.
const (
	renderTransition = "none"
	renderFps        = "30"
	renderResolution = "1080x1920"

	audioPartName  = "audio"
	audioFileName  = "narration.mp3"
	audioMediaType = "audio/mpeg"
	audioFormatTag = "mp3"
)

// BuildRenderRequest assembles the multipart body the render backend
// expects. The asset URL and duration lists are each encoded twice, once
// as indexed fields and once as a JSON-array field, because the
// backend's parser has accepted different shapes across versions. Both
// encodings are appended from the same source list by one helper so they
// cannot drift.
func BuildRenderRequest(scenes []domain.RenderScene, audio []byte, title string) (*outbound.RenderPayload, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: nothing to render", domain.ErrNoValidScenes)
	}

	urls := make([]string, len(scenes))
	durations := make([]string, len(scenes))
	for i, scene := range scenes {
		urls[i] = scene.ImageURL
		durations[i] = strconv.FormatFloat(scene.Duration, 'f', -1, 64)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	written := make(map[string]bool)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, audioPartName, audioFileName))
	header.Set("Content-Type", audioMediaType)
	audioPart, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%w: create audio part: %v", domain.ErrMalformedRequest, err)
	}
	if _, err := audioPart.Write(audio); err != nil {
		return nil, fmt.Errorf("%w: write audio part: %v", domain.ErrMalformedRequest, err)
	}
	written[audioPartName] = true

	if err := writeField(writer, written, "audio_format", audioFormatTag); err != nil {
		return nil, err
	}
	if err := writeDualEncoded(writer, written, "image_urls", urls); err != nil {
		return nil, err
	}
	if err := writeDualEncoded(writer, written, "durations", durations); err != nil {
		return nil, err
	}
	if err := writeField(writer, written, "title", title); err != nil {
		return nil, err
	}
	if err := writeField(writer, written, "transition", renderTransition); err != nil {
		return nil, err
	}
	if err := writeField(writer, written, "fps", renderFps); err != nil {
		return nil, err
	}
	if err := writeField(writer, written, "resolution", renderResolution); err != nil {
		return nil, err
	}

	// The dual encoding makes a silently dropped part hard to notice
	// downstream, so confirm every required part made it in.
	for _, required := range []string{audioPartName, "audio_format", "image_urls", "durations"} {
		if !written[required] {
			return nil, fmt.Errorf("%w: part %q missing", domain.ErrMalformedRequest, required)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize body: %v", domain.ErrMalformedRequest, err)
	}

	return &outbound.RenderPayload{
		Body:        body,
		ContentType: writer.FormDataContentType(),
	}, nil
}

// writeDualEncoded appends values under name both as indexed fields
// (name[0], name[1], ...) and as one JSON-array field under the bare
// name.
func writeDualEncoded(writer *multipart.Writer, written map[string]bool, name string, values []string) error {
	for i, value := range values {
		if err := writeField(writer, written, fmt.Sprintf("%s[%d]", name, i), value); err != nil {
			return err
		}
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrMalformedRequest, name, err)
	}
	return writeField(writer, written, name, string(encoded))
}

func writeField(writer *multipart.Writer, written map[string]bool, name, value string) error {
	if err := writer.WriteField(name, value); err != nil {
		return fmt.Errorf("%w: write field %s: %v", domain.ErrMalformedRequest, name, err)
	}
	written[name] = true
	return nil
}
