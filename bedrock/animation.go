package bedrock

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/mapstructure"
)

type LoopType int

const (
	Loop LoopType = iota
	Stop
	HoldOnLastFrame
)

func (l LoopType) String() string {
	switch l {
	case Loop:
		return "loop"
	case Stop:
		return "stop"
	default:
		return "hold_on_last_frame"
	}
}

// ParseLoopType reads the loop key of an animation, which is a bool or one of "true", "false" and
// "hold_on_last_frame". Anything else holds on the last frame.
func ParseLoopType(v interface{}) LoopType {
	switch val := v.(type) {
	case bool:
		if val {
			return Loop
		}
		return Stop
	case string:
		switch strings.ToLower(val) {
		case "true":
			return Loop
		case "false":
			return Stop
		}
	}
	return HoldOnLastFrame
}

type LerpMode int

const (
	LerpLinear LerpMode = iota
	LerpCatmullRom
)

// KeyValue is the value of a keyframe. Components that are Molang expressions are kept in Expr and
// left at zero in Vec; evaluating them is up to the renderer.
type KeyValue struct {
	Vec  mgl32.Vec3
	Expr [3]string
}

// IsConstant reports whether the value has no Molang components
func (k KeyValue) IsConstant() bool {
	return k.Expr == [3]string{}
}

type Keyframe struct {
	Time float32
	// Pre is the value approaching the keyframe, Post the value leaving it. They differ only for discontinuous curves.
	Pre  KeyValue
	Post KeyValue
	Lerp LerpMode
}

// Channel is one animated property of a bone, with keyframes sorted by time
type Channel struct {
	Keyframes []Keyframe
}

func (c Channel) Empty() bool {
	return len(c.Keyframes) == 0
}

// Sample returns the constant part of the channel at time t
func (c Channel) Sample(t float32) mgl32.Vec3 {
	frames := c.Keyframes
	if len(frames) == 0 {
		return mgl32.Vec3{}
	}
	if t <= frames[0].Time {
		return frames[0].Pre.Vec
	}
	last := len(frames) - 1
	if t >= frames[last].Time {
		return frames[last].Post.Vec
	}
	i := sort.Search(len(frames), func(i int) bool { return frames[i].Time > t }) - 1
	from, to := frames[i], frames[i+1]
	span := to.Time - from.Time
	if span <= 0 {
		return to.Pre.Vec
	}
	delta := (t - from.Time) / span
	if from.Lerp == LerpCatmullRom || to.Lerp == LerpCatmullRom {
		before := from.Post.Vec
		if i > 0 {
			before = frames[i-1].Post.Vec
		}
		after := to.Pre.Vec
		if i+2 <= last {
			after = frames[i+2].Pre.Vec
		}
		return catmullRom(before, from.Post.Vec, to.Pre.Vec, after, delta)
	}
	return from.Post.Vec.Add(to.Pre.Vec.Sub(from.Post.Vec).Mul(delta))
}

func catmullRom(p0, p1, p2, p3 mgl32.Vec3, t float32) mgl32.Vec3 {
	t2 := t * t
	t3 := t2 * t
	return p1.Mul(2).
		Add(p2.Sub(p0).Mul(t)).
		Add(p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)).
		Add(p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(t3)).
		Mul(0.5)
}

type BoneAnimation struct {
	Rotation Channel
	Position Channel
	Scale    Channel
}

// EntityAnimation is a single animation from an animations file.
// Animations are shared once loaded and must not be modified.
type EntityAnimation struct {
	Loop   LoopType
	Length float32
	Bones  map[string]BoneAnimation
}

// AnimationFromJSON builds an animation from its decoded JSON object. A missing loop key holds on the
// last frame; a missing animation_length is taken from the last keyframe.
func AnimationFromJSON(data map[string]interface{}) (*EntityAnimation, error) {
	anim := &EntityAnimation{
		Loop:  HoldOnLastFrame,
		Bones: make(map[string]BoneAnimation),
	}
	if loop, ok := data["loop"]; ok {
		anim.Loop = ParseLoopType(loop)
	}

	if bones, ok := data["bones"]; ok {
		boneMap, ok := bones.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("bones must be an object, got %T", bones)
		}
		for name, boneData := range boneMap {
			bone, err := boneFromJSON(boneData)
			if err != nil {
				return nil, fmt.Errorf("invalid bone %s: %w", name, err)
			}
			anim.Bones[name] = bone
		}
	}

	if length, ok := data["animation_length"]; ok {
		l, err := parseFloat(length)
		if err != nil {
			return nil, fmt.Errorf("invalid animation_length: %w", err)
		}
		anim.Length = l
	} else {
		for _, bone := range anim.Bones {
			for _, c := range []Channel{bone.Rotation, bone.Position, bone.Scale} {
				if !c.Empty() && c.Keyframes[len(c.Keyframes)-1].Time > anim.Length {
					anim.Length = c.Keyframes[len(c.Keyframes)-1].Time
				}
			}
		}
	}
	return anim, nil
}

// AnimationsFromJSON reads every animation of an animations file, keyed by animation name
func AnimationsFromJSON(data map[string]interface{}) (map[string]*EntityAnimation, Version, error) {
	version := Unspecified
	if v, ok := data["format_version"]; ok {
		var s string
		err := mapstructure.WeakDecode(v, &s)
		if err != nil {
			return nil, Unspecified, fmt.Errorf("invalid format_version: %w", err)
		}
		version, err = ParseVersion(s)
		if err != nil {
			return nil, Unspecified, err
		}
	}
	raw, ok := data["animations"].(map[string]interface{})
	if !ok {
		return nil, version, fmt.Errorf("%w: animations", ErrMissingKey)
	}
	out := make(map[string]*EntityAnimation, len(raw))
	for name, v := range raw {
		animData, ok := v.(map[string]interface{})
		if !ok {
			return nil, version, fmt.Errorf("animation %s must be an object, got %T", name, v)
		}
		anim, err := AnimationFromJSON(animData)
		if err != nil {
			return nil, version, fmt.Errorf("invalid animation %s: %w", name, err)
		}
		out[name] = anim
	}
	return out, version, nil
}

func boneFromJSON(data interface{}) (BoneAnimation, error) {
	var bone BoneAnimation
	m, ok := data.(map[string]interface{})
	if !ok {
		return bone, fmt.Errorf("bone must be an object, got %T", data)
	}
	var err error
	if bone.Rotation, err = channelFromJSON(m["rotation"]); err != nil {
		return bone, fmt.Errorf("rotation: %w", err)
	}
	if bone.Position, err = channelFromJSON(m["position"]); err != nil {
		return bone, fmt.Errorf("position: %w", err)
	}
	if bone.Scale, err = channelFromJSON(m["scale"]); err != nil {
		return bone, fmt.Errorf("scale: %w", err)
	}
	return bone, nil
}

// channelFromJSON reads a channel, which is either a single value or an object of keyframes keyed by time
func channelFromJSON(data interface{}) (Channel, error) {
	if data == nil {
		return Channel{}, nil
	}
	frames, ok := data.(map[string]interface{})
	if !ok {
		value, err := keyValueFromJSON(data)
		if err != nil {
			return Channel{}, err
		}
		return Channel{Keyframes: []Keyframe{{Pre: value, Post: value}}}, nil
	}

	c := Channel{Keyframes: make([]Keyframe, 0, len(frames))}
	for timeKey, v := range frames {
		t, err := parseFloat(timeKey)
		if err != nil {
			return Channel{}, fmt.Errorf("invalid keyframe time %q: %w", timeKey, err)
		}
		frame, err := keyframeFromJSON(v)
		if err != nil {
			return Channel{}, fmt.Errorf("keyframe %s: %w", timeKey, err)
		}
		frame.Time = t
		c.Keyframes = append(c.Keyframes, frame)
	}
	sort.Slice(c.Keyframes, func(i, j int) bool {
		return c.Keyframes[i].Time < c.Keyframes[j].Time
	})
	return c, nil
}

func keyframeFromJSON(data interface{}) (Keyframe, error) {
	m, ok := data.(map[string]interface{})
	if !ok {
		value, err := keyValueFromJSON(data)
		return Keyframe{Pre: value, Post: value}, err
	}

	var frame Keyframe
	pre, hasPre := m["pre"]
	post, hasPost := m["post"]
	if !hasPre && !hasPost {
		return frame, fmt.Errorf("%w: pre or post", ErrMissingKey)
	}
	var err error
	if hasPre {
		if frame.Pre, err = keyValueFromJSON(pre); err != nil {
			return frame, err
		}
	}
	if hasPost {
		if frame.Post, err = keyValueFromJSON(post); err != nil {
			return frame, err
		}
	}
	if !hasPre {
		frame.Pre = frame.Post
	}
	if !hasPost {
		frame.Post = frame.Pre
	}
	if mode, ok := m["lerp_mode"].(string); ok && strings.EqualFold(mode, "catmullrom") {
		frame.Lerp = LerpCatmullRom
	}
	return frame, nil
}

// keyValueFromJSON reads a vector given as a 3 element array, or a single number or expression used for all axes
func keyValueFromJSON(data interface{}) (KeyValue, error) {
	var out KeyValue
	if arr, ok := data.([]interface{}); ok {
		switch len(arr) {
		case 1:
			data = arr[0]
		case 3:
			for i, v := range arr {
				if err := setComponent(&out, i, v); err != nil {
					return out, err
				}
			}
			return out, nil
		default:
			return out, fmt.Errorf("expected 3 components, got %d", len(arr))
		}
	}
	for i := 0; i < 3; i++ {
		if err := setComponent(&out, i, data); err != nil {
			return out, err
		}
	}
	return out, nil
}

func setComponent(out *KeyValue, i int, v interface{}) error {
	switch val := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
		if err != nil {
			out.Expr[i] = val
			return nil
		}
		out.Vec[i] = float32(f)
		return nil
	default:
		f, err := parseFloat(val)
		if err != nil {
			return err
		}
		out.Vec[i] = f
		return nil
	}
}

func parseFloat(v interface{}) (float32, error) {
	var f float32
	err := mapstructure.WeakDecode(v, &f)
	return f, err
}
