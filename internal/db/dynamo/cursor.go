package dynamo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
)

// Key attribute type tags. DynamoDB keys are always S, N or B.
const (
	tagS = "S"
	tagN = "N"
	tagB = "B"
)

// encodeCursor turns LastEvaluatedKey into a JSON-safe cursor that keeps
// each attribute's type: {"PK": {"S": "USER#1"}, "ts": {"N": "1700000000"}}.
// Numbers stay decimal strings and binaries are base64.
func encodeCursor(key map[string]types.AttributeValue) (cursor.Cursor, error) {
	out := make(cursor.Cursor, len(key))
	for name, av := range key {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			out[name] = map[string]any{tagS: v.Value}
		case *types.AttributeValueMemberN:
			out[name] = map[string]any{tagN: v.Value}
		case *types.AttributeValueMemberB:
			out[name] = map[string]any{tagB: base64.StdEncoding.EncodeToString(v.Value)}
		default:
			return nil, fmt.Errorf("key attribute %s: unsupported type %T", name, av)
		}
	}
	return out, nil
}

// decodeCursor rebuilds the ExclusiveStartKey from a cursor made by
// encodeCursor. A bare string is read as an S attribute, so hand-written
// start keys like {"PK": "USER#42"} keep working.
func decodeCursor(c cursor.Cursor) (map[string]types.AttributeValue, error) {
	key := make(map[string]types.AttributeValue, len(c))
	for name, raw := range c {
		av, err := decodeKeyAttribute(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", db.ErrInvalidCursor, name, err)
		}
		key[name] = av
	}
	return key, nil
}

func decodeKeyAttribute(raw any) (types.AttributeValue, error) {
	switch v := raw.(type) {
	case string:
		return &types.AttributeValueMemberS{Value: v}, nil
	case map[string]any:
		if len(v) != 1 {
			return nil, errors.New("want exactly one type tag")
		}
		for tag, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("%s value must be a string, got %T", tag, val)
			}
			switch tag {
			case tagS:
				return &types.AttributeValueMemberS{Value: s}, nil
			case tagN:
				if _, err := strconv.ParseFloat(s, 64); err != nil {
					return nil, fmt.Errorf("bad number %q", s)
				}
				return &types.AttributeValueMemberN{Value: s}, nil
			case tagB:
				b, err := base64.StdEncoding.DecodeString(s)
				if err != nil {
					return nil, fmt.Errorf("bad binary: %w", err)
				}
				return &types.AttributeValueMemberB{Value: b}, nil
			default:
				return nil, fmt.Errorf("unsupported type tag %q", tag)
			}
		}
	}
	return nil, fmt.Errorf("unsupported value %T", raw)
}
