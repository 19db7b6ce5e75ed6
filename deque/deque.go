/**
 * 利用数组实现的定长双端队列，用于保存每个会话最近的模拟结果
 * 队头为最新的一次模拟，队满时 AddFirst 会挤掉队尾最旧的元素
 */

package deque

import "beercool/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 容量
	Capacity() int

	// 获取队列中对应下标的元素，0 为队头
	Get(i int) model.Snapshot

	// 正向遍历
	Traverse(f func(i int, item *model.Snapshot))

	// 在队列头部增加一个元素，队满时删除队尾元素
	AddFirst(item model.Snapshot)

	// 在队列结尾增加一个元素，队满时删除队头元素
	AddLast(item model.Snapshot)

	// 在队列头部删除一个元素
	RemoveFirst() (model.Snapshot, bool)

	// 在队列结尾删除一个元素
	RemoveLast() (model.Snapshot, bool)

	// 按从头到尾的顺序复制全部元素
	Items() []model.Snapshot

	IsFull() bool

	IsEmpty() bool
}
