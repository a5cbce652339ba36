package dynamo

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kailas-cloud/dynoscan/internal/db"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
)

// Scan issues exactly one Scan call. The filter is applied by DynamoDB after
// reading each page, so a page may hold fewer matches than exist.
func (s *Store) Scan(ctx context.Context, q *db.ScanQuery) (*db.ScanPage, error) {
	input, err := s.scanInput(q)
	if err != nil {
		return nil, err
	}

	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, &db.Error{Op: db.OpScan, Err: err}
	}

	var items []map[string]any
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	page := &db.ScanPage{
		Items:        items,
		ScannedCount: int(out.ScannedCount),
	}
	if len(out.LastEvaluatedKey) > 0 {
		if page.LastKey, err = encodeCursor(out.LastEvaluatedKey); err != nil {
			return nil, fmt.Errorf("encode last evaluated key: %w", err)
		}
	}
	return page, nil
}

func (s *Store) scanInput(q *db.ScanQuery) (*dynamodb.ScanInput, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	if s.pageSize > 0 {
		input.Limit = aws.Int32(s.pageSize)
	}

	if err := applyFilter(input, q.Filter); err != nil {
		return nil, err
	}

	if !q.StartKey.IsEmpty() {
		key, err := decodeCursor(q.StartKey)
		if err != nil {
			return nil, err
		}
		input.ExclusiveStartKey = key
	}
	return input, nil
}

// applyFilter sets FilterExpression and its placeholders. Builder-made
// conditions come first; typed contains clauses are ANDed after them with
// their own #ct/:ct placeholders, which never collide with the builder's
// numeric ones.
func applyFilter(input *dynamodb.ScanInput, f filter.Expression) error {
	cond, hasCond := compileFilter(f)
	typed := typedContains(f)
	if !hasCond && len(typed) == 0 {
		return nil
	}

	var (
		parts  []string
		names  = make(map[string]string)
		values = make(map[string]types.AttributeValue)
	)
	if hasCond {
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return fmt.Errorf("build filter expression: %w", err)
		}
		parts = append(parts, "("+aws.ToString(expr.Filter())+")")
		maps.Copy(names, expr.Names())
		maps.Copy(values, expr.Values())
	}

	for i, c := range typed {
		operand, err := attributevalue.Marshal(c.Value())
		if err != nil {
			return fmt.Errorf("encode contains operand for %s: %w", c.Field(), err)
		}
		segments := strings.Split(c.Field(), ".")
		path := make([]string, len(segments))
		for j, seg := range segments {
			ph := fmt.Sprintf("#ct%d_%d", i, j)
			names[ph] = seg
			path[j] = ph
		}
		vph := fmt.Sprintf(":ct%d", i)
		values[vph] = operand
		parts = append(parts, fmt.Sprintf("contains (%s, %s)", strings.Join(path, "."), vph))
	}

	input.FilterExpression = aws.String(strings.Join(parts, " AND "))
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}
	return nil
}
