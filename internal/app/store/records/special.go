package records

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"github.com/ngoworks/programhub/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// bucketDay renders a stored daily-usage date as a UTC calendar day.
func bucketDay(v any) string {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC().Format("2006-01-02")
	case time.Time:
		return t.UTC().Format("2006-01-02")
	default:
		return ""
	}
}

// Category-specific operations that go beyond the generic child and
// merge machinery. Each is dispatched by the programs feature for the
// one category it belongs to.

// enrollFilter matches the hub only when a single program element is
// both the named program and active; separate dot-path predicates
// could be satisfied by different elements, leaving the positional
// update pointing at the wrong program.
func (s *Store) enrollFilter(key, programID string) bson.M {
	return bson.M{
		s.cat.KeyField: key,
		"programs": bson.M{"$elemMatch": bson.M{
			"id":     programID,
			"status": "active",
		}},
	}
}

// EnrollStudent enrolls a student into one of a hub's active programs,
// bumping both the program's enrollment count and the hub's current
// enrollment. The target program must exist and be active.
func (s *Store) EnrollStudent(ctx context.Context, key string, payload bson.M) error {
	v := &apperr.Validation{}
	if catalog.Str(payload, "programId") == "" {
		v.Add("programId", "Program ID is required")
	}
	if catalog.Str(payload, "studentName") == "" {
		v.Add("studentName", "Student name is required")
	}
	if _, isNum := payload["age"].(float64); !isNum {
		v.Add("age", "Age must be a number")
	}
	if err := v.Or(); err != nil {
		return err
	}

	filter := s.enrollFilter(key, catalog.Str(payload, "programId"))
	update := bson.M{
		"$inc": bson.M{
			"programs.$.enrollmentCount": 1,
			"capacity.currentEnrollment": 1,
		},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("enroll %s: %w", s.cat.Name, err)
	}
	if res.MatchedCount == 0 {
		return s.missingParentOrChild(ctx, key)
	}
	return nil
}

// RecordProgress folds new student-progress counters into a hub and
// recomputes the average improvement rate.
func (s *Store) RecordProgress(ctx context.Context, key string, payload bson.M) error {
	v := &apperr.Validation{}
	for _, f := range []string{"newStudents", "completed", "improved"} {
		if val, ok := payload[f]; ok {
			if _, isNum := val.(float64); !isNum {
				v.Add(f, f+" must be a number")
			}
		}
	}
	if err := v.Or(); err != nil {
		return err
	}

	var doc bson.M
	err := s.c.FindOne(ctx, s.keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s: %w", s.cat.Name, err)
	}

	total := catalog.NumAt(doc, "performance.studentProgress.totalStudents") + catalog.Num(payload["newStudents"])
	completed := catalog.NumAt(doc, "performance.studentProgress.completedPrograms") + catalog.Num(payload["completed"])
	improved := catalog.NumAt(doc, "performance.studentProgress.improvedLiteracy") + catalog.Num(payload["improved"])

	average := 0.0
	if total > 0 {
		average = math.Round(improved / total * 100)
	}

	update := bson.M{"$set": bson.M{
		"performance.studentProgress.totalStudents":      total,
		"performance.studentProgress.completedPrograms":  completed,
		"performance.studentProgress.improvedLiteracy":   improved,
		"performance.studentProgress.averageImprovement": average,
		"updatedAt": time.Now().UTC(),
	}}
	if _, err := s.c.UpdateOne(ctx, s.keyFilter(key), update); err != nil {
		return fmt.Errorf("progress %s: %w", s.cat.Name, err)
	}
	return nil
}

// RecordUsage registers one reading session on a device: session and
// reading-time totals grow, the activity stamp moves, and today's
// daily-usage bucket is created or incremented.
func (s *Store) RecordUsage(ctx context.Context, key string, payload bson.M) error {
	duration, isNum := payload["duration"].(float64)
	if !isNum {
		return (&apperr.Validation{}).Add("duration", "Duration must be a number").Or()
	}

	var doc bson.M
	err := s.c.FindOne(ctx, s.keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s: %w", s.cat.Name, err)
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	daily := catalog.ArrAt(doc, "usage.dailyUsage")
	bucketIdx := -1
	for i, d := range daily {
		el, ok := d.(bson.M)
		if !ok {
			continue
		}
		if bucketDay(el["date"]) == today {
			bucketIdx = i
			break
		}
	}

	set := bson.M{
		"usage.lastActivity": now,
		"updatedAt":          now,
	}
	inc := bson.M{
		"usage.totalSessions":    1,
		"usage.totalReadingTime": duration,
	}
	update := bson.M{"$set": set, "$inc": inc}
	if bucketIdx >= 0 {
		inc[fmt.Sprintf("usage.dailyUsage.%d.sessions", bucketIdx)] = 1
		inc[fmt.Sprintf("usage.dailyUsage.%d.readingTime", bucketIdx)] = duration
	} else {
		update["$push"] = bson.M{"usage.dailyUsage": bson.M{
			"date":        now,
			"sessions":    1,
			"readingTime": duration,
			"uniqueUsers": 1,
		}}
	}

	if _, err := s.c.UpdateOne(ctx, s.keyFilter(key), update); err != nil {
		return fmt.Errorf("usage %s: %w", s.cat.Name, err)
	}
	return nil
}

// EnrollTeacher adds a participant to a training program. While seats
// remain the participant is enrolled and the enrollment counter grows;
// once the program is full new participants are waitlisted instead.
func (s *Store) EnrollTeacher(ctx context.Context, key string, payload bson.M) error {
	v := &apperr.Validation{}
	if catalog.Str(payload, "teacherId") == "" {
		v.Add("teacherId", "Teacher ID is required")
	}
	if catalog.Str(payload, "name") == "" {
		v.Add("name", "Teacher name is required")
	}
	if catalog.Str(payload, "school") == "" {
		v.Add("school", "School name is required")
	}
	if _, isNum := payload["experience"].(float64); !isNum {
		v.Add("experience", "Experience must be a number")
	}
	if err := v.Or(); err != nil {
		return err
	}

	var doc bson.M
	err := s.c.FindOne(ctx, s.keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s: %w", s.cat.Name, err)
	}

	now := time.Now().UTC()
	participant := bson.M{
		"teacherId":      catalog.Str(payload, "teacherId"),
		"name":           catalog.Str(payload, "name"),
		"school":         catalog.Str(payload, "school"),
		"experience":     payload["experience"],
		"enrollmentDate": now,
		"progress":       0,
		"attendance":     0,
	}

	inc := bson.M{}
	current := catalog.NumAt(doc, "enrollment.currentEnrollment")
	max := catalog.NumAt(doc, "enrollment.maxParticipants")
	if current < max {
		participant["status"] = "enrolled"
		inc["enrollment.currentEnrollment"] = 1
	} else {
		participant["status"] = "waitlisted"
		inc["enrollment.waitlist"] = 1
	}

	update := bson.M{
		"$push": bson.M{"enrollment.participants": participant},
		"$inc":  inc,
		"$set":  bson.M{"updatedAt": now},
	}
	if _, err := s.c.UpdateOne(ctx, s.keyFilter(key), update); err != nil {
		return fmt.Errorf("enroll %s: %w", s.cat.Name, err)
	}
	return nil
}
