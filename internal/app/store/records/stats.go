package records

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// Aggregation builders for the stats/global endpoint. Group keys are
// emitted in sorted order so pipelines are deterministic.

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sumExpr(path string) bson.M {
	return bson.M{"$sum": bson.M{"$ifNull": bson.A{"$" + path, 0}}}
}

func sizeSumExpr(path string) bson.M {
	return bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": bson.A{"$" + path, bson.A{}}}}}
}

func statusCountExpr(status string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", status}}, 1, 0,
	}}}
}

// globalPipeline builds the single-group pipeline for the category's
// whole-collection totals.
func (s *Store) globalPipeline() []bson.M {
	spec := s.cat.Stats

	group := bson.M{
		"_id":         nil,
		spec.TotalKey: bson.M{"$sum": 1},
	}
	for _, key := range sortedKeys(spec.StatusCounts) {
		group[key] = statusCountExpr(spec.StatusCounts[key])
	}
	for _, key := range sortedKeys(spec.Sums) {
		group[key] = sumExpr(spec.Sums[key])
	}
	for _, key := range sortedKeys(spec.SizeSums) {
		group[key] = sizeSumExpr(spec.SizeSums[key])
	}
	for _, key := range sortedKeys(spec.Avgs) {
		group[key] = bson.M{"$avg": "$" + spec.Avgs[key]}
	}
	if r := spec.RatioAvg; r != nil {
		group[r.Name] = bson.M{"$avg": bson.M{"$cond": bson.A{
			bson.M{"$gt": bson.A{"$" + r.Denominator, 0}},
			bson.M{"$divide": bson.A{"$" + r.Numerator, "$" + r.Denominator}},
			0,
		}}}
	}

	return []bson.M{{"$group": group}}
}

// zeroGlobal is the stats document reported for an empty collection.
func (s *Store) zeroGlobal() bson.M {
	spec := s.cat.Stats
	out := bson.M{spec.TotalKey: 0}
	for key := range spec.StatusCounts {
		out[key] = 0
	}
	for key := range spec.Sums {
		out[key] = 0
	}
	for key := range spec.SizeSums {
		out[key] = 0
	}
	for key := range spec.Avgs {
		out[key] = 0
	}
	if spec.RatioAvg != nil {
		out[spec.RatioAvg.Name] = 0
	}
	return out
}

// breakdownPipeline builds one group-by section, sorted by descending
// count with the group key as tie-break.
func (s *Store) breakdownPipeline(i int) []bson.M {
	b := s.cat.Stats.Breakdowns[i]

	group := bson.M{
		"_id":      "$" + b.GroupBy,
		b.CountKey: bson.M{"$sum": 1},
	}
	for _, key := range sortedKeys(b.Sums) {
		group[key] = sumExpr(b.Sums[key])
	}
	for _, key := range sortedKeys(b.SizeSums) {
		group[key] = sizeSumExpr(b.SizeSums[key])
	}
	for _, key := range sortedKeys(b.Avgs) {
		group[key] = bson.M{"$avg": "$" + b.Avgs[key]}
	}

	pipeline := []bson.M{}
	if b.Unwind != "" {
		pipeline = append(pipeline, bson.M{"$unwind": "$" + b.Unwind})
	}
	pipeline = append(pipeline,
		bson.M{"$group": group},
		bson.M{"$sort": bson.D{{Key: b.CountKey, Value: -1}, {Key: "_id", Value: 1}}},
	)
	if b.Limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": b.Limit})
	}
	return pipeline
}

func (s *Store) aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error) {
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// GlobalStats assembles the category's whole-collection totals plus
// each configured breakdown. An empty collection yields zeroed totals
// and empty breakdowns; null averages are coerced to zero.
func (s *Store) GlobalStats(ctx context.Context) (bson.M, error) {
	rows, err := s.aggregate(ctx, s.globalPipeline())
	if err != nil {
		return nil, fmt.Errorf("stats %s: %w", s.cat.Name, err)
	}

	global := s.zeroGlobal()
	if len(rows) > 0 {
		for k, v := range rows[0] {
			if k == "_id" {
				continue
			}
			if v == nil {
				v = 0
			}
			global[k] = v
		}
	}

	out := bson.M{"global": global}
	for i, b := range s.cat.Stats.Breakdowns {
		rows, err := s.aggregate(ctx, s.breakdownPipeline(i))
		if err != nil {
			return nil, fmt.Errorf("stats %s %s: %w", s.cat.Name, b.Name, err)
		}
		for _, row := range rows {
			for k, v := range row {
				if v == nil && k != "_id" {
					row[k] = 0
				}
			}
		}
		out[b.Name] = rows
	}
	return out, nil
}
