package bedrock

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func TestParseLoopType(t *testing.T) {
	tests := []struct {
		in   interface{}
		want LoopType
	}{
		{true, Loop},
		{false, Stop},
		{"true", Loop},
		{"TRUE", Loop},
		{"false", Stop},
		{"hold_on_last_frame", HoldOnLastFrame},
		{"forever", HoldOnLastFrame},
		{1.0, HoldOnLastFrame},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLoopType(tt.in), "loop %v", tt.in)
	}
}

func TestAnimationDefaults(t *testing.T) {
	anim, err := AnimationFromJSON(decode(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, HoldOnLastFrame, anim.Loop)
	assert.Equal(t, float32(0), anim.Length)
	assert.NotNil(t, anim.Bones)
	assert.Empty(t, anim.Bones)
}

func TestAnimationLoopKey(t *testing.T) {
	anim, err := AnimationFromJSON(decode(t, `{"loop": "true"}`))
	require.NoError(t, err)
	assert.Equal(t, Loop, anim.Loop)

	anim, err = AnimationFromJSON(decode(t, `{"loop": "false"}`))
	require.NoError(t, err)
	assert.Equal(t, Stop, anim.Loop)

	anim, err = AnimationFromJSON(decode(t, `{"loop": "sometimes"}`))
	require.NoError(t, err)
	assert.Equal(t, HoldOnLastFrame, anim.Loop)
}

func TestAnimationLength(t *testing.T) {
	anim, err := AnimationFromJSON(decode(t, `{"animation_length": 2.25}`))
	require.NoError(t, err)
	assert.Equal(t, float32(2.25), anim.Length)

	anim, err = AnimationFromJSON(decode(t, `{"animation_length": "0.5"}`))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), anim.Length)

	_, err = AnimationFromJSON(decode(t, `{"animation_length": "half a second"}`))
	assert.Error(t, err)

	// Without animation_length, the last keyframe decides. Bedrock plays such animations until
	// their last keyframe, so this deliberately does not default to 0.
	anim, err = AnimationFromJSON(decode(t, `{"bones": {"body": {"position": {"0.0": [0, 0, 0], "0.8": [0, 1, 0]}}}}`))
	require.NoError(t, err)
	assert.Equal(t, float32(0.8), anim.Length)
}

func TestAnimationBones(t *testing.T) {
	anim, err := AnimationFromJSON(decode(t, `{
		"loop": true,
		"bones": {
			"head": {
				"rotation": {
					"0.5": {"pre": [10, 0, 0], "post": [20, 0, 0], "lerp_mode": "catmullrom"},
					"0.0": [0, "math.sin(query.anim_time)", "5"],
					"1.0": {"post": [0, 0, 0]}
				},
				"scale": 2
			},
			"body": {"position": ["-1.5"]}
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, Loop, anim.Loop)
	require.Len(t, anim.Bones, 2)

	head := anim.Bones["head"]
	require.Len(t, head.Rotation.Keyframes, 3)
	first := head.Rotation.Keyframes[0]
	assert.Equal(t, float32(0), first.Time)
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, first.Pre.Vec)
	assert.Equal(t, [3]string{"", "math.sin(query.anim_time)", ""}, first.Pre.Expr)
	assert.False(t, first.Pre.IsConstant())

	mid := head.Rotation.Keyframes[1]
	assert.Equal(t, float32(0.5), mid.Time)
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, mid.Pre.Vec)
	assert.Equal(t, mgl32.Vec3{20, 0, 0}, mid.Post.Vec)
	assert.Equal(t, LerpCatmullRom, mid.Lerp)

	last := head.Rotation.Keyframes[2]
	assert.Equal(t, last.Post, last.Pre)
	assert.True(t, last.Pre.IsConstant())

	require.Len(t, head.Scale.Keyframes, 1)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, head.Scale.Keyframes[0].Post.Vec)
	assert.True(t, head.Position.Empty())

	body := anim.Bones["body"]
	assert.Equal(t, mgl32.Vec3{-1.5, -1.5, -1.5}, body.Position.Keyframes[0].Pre.Vec)
	assert.Equal(t, float32(1), anim.Length)
}

func TestAnimationInvalid(t *testing.T) {
	_, err := AnimationFromJSON(decode(t, `{"bones": []}`))
	assert.Error(t, err)

	_, err = AnimationFromJSON(decode(t, `{"bones": {"head": {"rotation": {"soon": [0, 0, 0]}}}}`))
	assert.Error(t, err)

	_, err = AnimationFromJSON(decode(t, `{"bones": {"head": {"rotation": [1, 2]}}}`))
	assert.Error(t, err)

	_, err = AnimationFromJSON(decode(t, `{"bones": {"head": {"rotation": {"0.0": {"lerp_mode": "linear"}}}}}`))
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestChannelSample(t *testing.T) {
	c := Channel{Keyframes: []Keyframe{
		{Time: 0, Pre: KeyValue{Vec: mgl32.Vec3{0, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{0, 0, 0}}},
		{Time: 1, Pre: KeyValue{Vec: mgl32.Vec3{10, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{20, 0, 0}}},
		{Time: 2, Pre: KeyValue{Vec: mgl32.Vec3{0, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{0, 0, 0}}},
	}}

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Sample(-1))
	assert.True(t, c.Sample(0.5).ApproxEqual(mgl32.Vec3{5, 0, 0}))
	// Post of the keyframe applies from its time onwards
	assert.True(t, c.Sample(1).ApproxEqual(mgl32.Vec3{20, 0, 0}))
	assert.True(t, c.Sample(1.5).ApproxEqual(mgl32.Vec3{10, 0, 0}))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Sample(3))

	assert.Equal(t, mgl32.Vec3{}, Channel{}.Sample(1))
}

func TestChannelSampleCatmullRom(t *testing.T) {
	c := Channel{Keyframes: []Keyframe{
		{Time: 0, Pre: KeyValue{Vec: mgl32.Vec3{0, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{0, 0, 0}}, Lerp: LerpCatmullRom},
		{Time: 1, Pre: KeyValue{Vec: mgl32.Vec3{1, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{1, 0, 0}}, Lerp: LerpCatmullRom},
		{Time: 2, Pre: KeyValue{Vec: mgl32.Vec3{2, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{2, 0, 0}}, Lerp: LerpCatmullRom},
		{Time: 3, Pre: KeyValue{Vec: mgl32.Vec3{3, 0, 0}}, Post: KeyValue{Vec: mgl32.Vec3{3, 0, 0}}, Lerp: LerpCatmullRom},
	}}
	// Evenly spaced points on a line stay on the line
	assert.True(t, c.Sample(1.5).ApproxEqual(mgl32.Vec3{1.5, 0, 0}))
	assert.True(t, c.Sample(1.25).ApproxEqual(mgl32.Vec3{1.25, 0, 0}))
}

func TestAnimationsFromJSON(t *testing.T) {
	anims, version, err := AnimationsFromJSON(decode(t, `{
		"format_version": "1.8.0",
		"animations": {
			"animation.pig.setup": {"loop": true},
			"animation.pig.baby": {"loop": "hold_on_last_frame", "animation_length": 0.1}
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "1.8.0", version.String())
	require.Len(t, anims, 2)
	assert.Equal(t, Loop, anims["animation.pig.setup"].Loop)
	assert.Equal(t, HoldOnLastFrame, anims["animation.pig.baby"].Loop)

	_, _, err = AnimationsFromJSON(decode(t, `{"format_version": "1.8.0"}`))
	assert.ErrorIs(t, err, ErrMissingKey)

	// One broken animation fails the whole file
	_, _, err = AnimationsFromJSON(decode(t, `{"animations": {"a": {}, "b": {"animation_length": "x"}}}`))
	assert.Error(t, err)
}
