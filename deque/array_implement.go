package deque

import "beercool/model"

type ArrDeque struct {
	arr []model.Snapshot
	// 队头下标
	start int
	// 元素个数
	size int
}

// 工厂方法，容量至少为 1
func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque{
		arr: make([]model.Snapshot, capacity),
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Capacity() int {
	return len(ad.arr)
}

func (ad *ArrDeque) index(i int) int {
	return (ad.start + i) % len(ad.arr)
}

func (ad *ArrDeque) Get(i int) model.Snapshot {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque) Traverse(f func(i int, item *model.Snapshot)) {
	for i := 0; i < ad.size; i++ {
		f(i, &ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque) AddFirst(item model.Snapshot) {
	if ad.IsFull() {
		ad.RemoveLast()
	}
	ad.start = (ad.start - 1 + len(ad.arr)) % len(ad.arr)
	ad.arr[ad.start] = item
	ad.size++
}

func (ad *ArrDeque) AddLast(item model.Snapshot) {
	if ad.IsFull() {
		ad.RemoveFirst()
	}
	ad.arr[ad.index(ad.size)] = item
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() (model.Snapshot, bool) {
	if ad.IsEmpty() {
		return model.Snapshot{}, false
	}
	item := ad.arr[ad.start]
	ad.arr[ad.start] = model.Snapshot{}
	ad.start = ad.index(1)
	ad.size--
	return item, true
}

func (ad *ArrDeque) RemoveLast() (model.Snapshot, bool) {
	if ad.IsEmpty() {
		return model.Snapshot{}, false
	}
	last := ad.index(ad.size - 1)
	item := ad.arr[last]
	ad.arr[last] = model.Snapshot{}
	ad.size--
	return item, true
}

func (ad *ArrDeque) Items() []model.Snapshot {
	items := make([]model.Snapshot, 0, ad.size)
	ad.Traverse(func(_ int, item *model.Snapshot) {
		items = append(items, *item)
	})
	return items
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == len(ad.arr)
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
