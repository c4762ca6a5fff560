package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdkcentral/zilker-sdk-sub008/deviceid"
	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
)

func TestPictureQualityMapping(t *testing.T) {
	small := ruleir.PictureSmall
	large := ruleir.PictureLarge
	medium := ruleir.PictureMedium
	assert.Equal(t, "low", pictureQuality(&small))
	assert.Equal(t, "high", pictureQuality(&large))
	assert.Equal(t, "medium", pictureQuality(&medium))
	assert.Equal(t, "medium", pictureQuality(nil))
}

func TestBuildTakePictureLiteralDefaults(t *testing.T) {
	literal, err := buildTakePictureLiteral(ruleir.TakePictureAction{CameraID: "cam.front"}, 7, deviceid.DefaultMapper{})
	require.NoError(t, err)
	assert.Contains(t, literal, `"deviceId": "front"`)
	assert.Contains(t, literal, `"endpointId": "*"`)
	assert.Contains(t, literal, `"count": 5`)
	assert.Contains(t, literal, `"quality": "medium"`)
	assert.Contains(t, literal, `bindings["event-code"]`)
}

func TestBuildTakePictureLiteralUnmappableCameraFails(t *testing.T) {
	_, err := buildTakePictureLiteral(ruleir.TakePictureAction{CameraID: "no-dot"}, 7, deviceid.DefaultMapper{})
	assert.Error(t, err)
}

func TestBuildRecordVideoLiteralFixedPreroll(t *testing.T) {
	literal, err := buildRecordVideoLiteral(ruleir.RecordVideoAction{CameraID: "cam.front"}, 7, deviceid.DefaultMapper{})
	require.NoError(t, err)
	assert.Contains(t, literal, `"preroll": 5`)
	assert.Contains(t, literal, `"duration": 10`)
}

func TestBuildRecordVideoLiteralCustomDuration(t *testing.T) {
	duration := 20
	literal, err := buildRecordVideoLiteral(ruleir.RecordVideoAction{CameraID: "cam.front", Duration: &duration}, 7, deviceid.DefaultMapper{})
	require.NoError(t, err)
	assert.Contains(t, literal, `"duration": 20`)
}
