package usecase_test

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func seqFactory() *entity.Factory {
	n := 0
	return entity.NewFactory(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func testOptions() usecase.DockingOptions {
	opts := usecase.DefaultDockingOptions()
	opts.Layout = entity.LayoutOptions{Spacing: 1, TabWidth: 10, TabHeight: 1}
	return opts
}

// dragFixture lays out Y on the left (0,0,100,100) and X on the right
// (101,0,100,100). X holds a, b, c with b selected; Y holds y.
type dragFixture struct {
	set     *entity.ArrangementSet
	arr     *entity.Arrangement
	x, y    *entity.Container
	docking *usecase.ManageDockingUseCase
	drag    *usecase.DragSession
}

func newDragFixture() *dragFixture {
	f := seqFactory()
	set := entity.NewArrangementSet(f)
	x := f.NewContainer()
	y := f.NewContainer()
	arr := f.NewArrangement(y)
	if _, err := arr.Split(y, x, entity.OrientationRight, 0.5); err != nil {
		panic(err)
	}
	if err := set.Replace([]*entity.Arrangement{arr}); err != nil {
		panic(err)
	}

	docking := usecase.NewManageDockingUseCase(set, nil, testOptions())
	ctx := testContext()
	for _, k := range []string{"a", "b", "c"} {
		if err := docking.PutItem(ctx, k, entity.NewBasicItem(k)); err != nil {
			panic(err)
		}
	}
	if _, err := y.Put("y", entity.NewBasicItem("y")); err != nil {
		panic(err)
	}
	if err := x.Select("b"); err != nil {
		panic(err)
	}

	fx := &dragFixture{set: set, arr: arr, x: x, y: y, docking: docking, drag: usecase.NewDragSession(docking)}
	fx.layout()
	return fx
}

func (fx *dragFixture) layout() {
	_ = fx.docking.Refresh(testContext())
	for _, a := range fx.set.Arrangements() {
		fx.docking.LayoutArrangement(a, entity.Rect{W: 201, H: 100})
	}
}

// countingItem records how often it was attached to and detached from a slot.
type countingItem struct {
	attached int
	detached int
}

func (i *countingItem) Attached(entity.Host) { i.attached++ }
func (i *countingItem) Detaching() bool      { return true }
func (i *countingItem) Detached()            { i.detached++ }

// hosts is the number of slots currently holding the item.
func (i *countingItem) hosts() int { return i.attached - i.detached }
