// internal/app/save.go
package app

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"go-reactor-sim/internal/persist"
	"go-reactor-sim/internal/types"
	"go-reactor-sim/pkg/hexmap"
)

// Snapshot captures every living building. Reactors write their own
// payload; other blocks store health and the enabled flag.
func (g *Game) Snapshot() (*persist.SaveFile, error) {
	save := &persist.SaveFile{
		Revision: persist.Revision,
		Tick:     g.ticks,
		Seed:     g.Rng.Seed(),
	}
	for _, id := range slices.Sorted(maps.Keys(g.ECS.Buildings)) {
		b := g.ECS.Buildings[id]
		if b.Dead {
			continue
		}
		var buf bytes.Buffer
		w := persist.NewWrites(&buf)
		if r, ok := g.ECS.Reactors[id]; ok {
			r.Write(w, g.Library)
		} else {
			w.F(float32(g.ECS.Healths[id].Value))
			w.Bool(b.Enabled)
		}
		if err := w.Err(); err != nil {
			return nil, fmt.Errorf("snapshot %s #%d: %w", b.DefID, id, err)
		}
		save.Records = append(save.Records, persist.Record{
			DefID:   b.DefID,
			Q:       int32(b.Hex.Q),
			R:       int32(b.Hex.R),
			Payload: buf.Bytes(),
		})
	}
	return save, nil
}

// Restore replaces the world with the contents of save.
func (g *Game) Restore(save *persist.SaveFile) error {
	for _, id := range slices.Collect(maps.Keys(g.ECS.Buildings)) {
		g.HexMap.Free(g.ECS.Buildings[id].Hex)
		g.ECS.Remove(id)
	}
	clear(g.ECS.Effects)

	for _, rec := range save.Records {
		hex := hexmap.Hex{Q: int(rec.Q), R: int(rec.R)}
		id, err := g.PlaceBlock(rec.DefID, hex)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		if err := g.restoreRecord(id, rec, save.Revision); err != nil {
			return fmt.Errorf("restore %s at %v: %w", rec.DefID, hex, err)
		}
	}

	g.ticks = save.Tick
	g.ECS.GameTime = float64(save.Tick)
	g.Log.Info("world restored",
		zap.Int("records", len(save.Records)),
		zap.Int64("tick", save.Tick),
		zap.Uint8("revision", save.Revision),
	)
	return nil
}

func (g *Game) restoreRecord(id types.EntityID, rec persist.Record, revision byte) error {
	rd := persist.NewReads(bytes.NewReader(rec.Payload))
	if r, ok := g.ECS.Reactors[id]; ok {
		if err := r.Read(rd, revision, g.Library); err != nil {
			return err
		}
		g.AttachSupply(id)
		return nil
	}
	health := float64(rd.F())
	enabled := rd.Bool()
	if err := rd.Err(); err != nil {
		return err
	}
	h := g.ECS.Healths[id]
	h.Value = min(max(health, 0), h.Max)
	g.ECS.Buildings[id].Enabled = enabled
	return nil
}

// SaveTo writes a snapshot and the current stats into store.
func (g *Game) SaveTo(ctx context.Context, store *persist.Store, name string) (string, error) {
	save, err := g.Snapshot()
	if err != nil {
		return "", err
	}
	return store.Save(ctx, name, save, g.Stats.Stats())
}

// LoadFrom restores the world and stats from a stored save.
func (g *Game) LoadFrom(ctx context.Context, store *persist.Store, id string) error {
	save, info, err := store.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := g.Restore(save); err != nil {
		return err
	}
	g.Stats.Restore(info.Stats)
	return nil
}
