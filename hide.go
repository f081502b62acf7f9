package pokelinks

// hideItemColumn splices an item's column header out of the item list in
// O(1) and tags it hidden so the solver and Items() both skip it.
func (m *Matrix) hideItemColumn(headerIndex int) {
	cur := m.itemTable[headerIndex]
	m.itemTable[cur.Left].Right = cur.Right
	m.itemTable[cur.Right].Left = cur.Left
	m.links[headerIndex].Tag = hiddenTag
	m.numItems--
}

// unhideItemColumn undoes hideItemColumn.
func (m *Matrix) unhideItemColumn(headerIndex int) {
	cur := m.itemTable[headerIndex]
	m.itemTable[cur.Left].Right = headerIndex
	m.itemTable[cur.Right].Left = headerIndex
	m.links[headerIndex].Tag = 0
	m.numItems++
}

// hideOptionRow splices an entire option out of every column it touches,
// removing it from play until explicitly unhidden.
func (m *Matrix) hideOptionRow(rowIndex int) {
	m.links[rowIndex].Tag = hiddenTag
	for i := rowIndex + 1; m.links[i].TopOrLen > 0; i++ {
		cur := m.links[i]
		m.links[cur.Up].Down = cur.Down
		m.links[cur.Down].Up = cur.Up
		m.links[cur.TopOrLen].TopOrLen--
	}
	m.numOptions--
}

// unhideOptionRow undoes hideOptionRow.
func (m *Matrix) unhideOptionRow(rowIndex int) {
	m.links[rowIndex].Tag = 0
	for i := rowIndex + 1; m.links[i].TopOrLen > 0; i++ {
		cur := m.links[i]
		m.links[cur.Up].Down = i
		m.links[cur.Down].Up = i
		m.links[cur.TopOrLen].TopOrLen++
	}
	m.numOptions++
}

// HideItem removes a single item from play, pushing it onto the hidden-item
// stack. Reports false if the item is unknown or already hidden.
func (m *Matrix) HideItem(item Type) bool {
	idx := m.findItemIndex(item)
	if idx == 0 || m.links[idx].Tag == hiddenTag {
		return false
	}
	m.hiddenItems = append(m.hiddenItems, idx)
	m.hideItemColumn(idx)
	return true
}

// HideItems hides every item in items, reporting whether all of them were
// hidden successfully.
func (m *Matrix) HideItems(items []Type) bool {
	ok := true
	for _, t := range items {
		if !m.HideItem(t) {
			ok = false
		}
	}
	return ok
}

// HideItemsReporting hides every item in items like HideItems, additionally
// collecting the ones that failed to hide.
func (m *Matrix) HideItemsReporting(items []Type) (ok bool, failed []Type) {
	ok = true
	for _, t := range items {
		if !m.HideItem(t) {
			ok = false
			failed = append(failed, t)
		}
	}
	return ok, failed
}

// HideAllItemsExcept hides every in-play item not named in keep.
func (m *Matrix) HideAllItemsExcept(keep map[Type]bool) {
	for i := m.itemTable[0].Right; i != 0; i = m.itemTable[i].Right {
		if !keep[m.itemTable[i].Name] {
			m.hiddenItems = append(m.hiddenItems, i)
			m.hideItemColumn(i)
		}
	}
}

// HasItem reports whether item is known and currently in play.
func (m *Matrix) HasItem(item Type) bool {
	idx := m.findItemIndex(item)
	return idx != 0 && m.links[idx].Tag != hiddenTag
}

// PeekHiddenItem returns the most recently hidden item without popping it.
// It panics if no items are hidden: the hidden-item stack is a programmer
// contract, not user input, so an empty pop is a logic error in the caller.
func (m *Matrix) PeekHiddenItem() Type {
	if len(m.hiddenItems) == 0 {
		panic("pokelinks: peek on empty hidden-item stack")
	}
	return m.itemTable[m.hiddenItems[len(m.hiddenItems)-1]].Name
}

// PopHiddenItem unhides the most recently hidden item and pops the stack.
// It panics on an empty stack; see PeekHiddenItem.
func (m *Matrix) PopHiddenItem() {
	if len(m.hiddenItems) == 0 {
		panic("pokelinks: pop on empty hidden-item stack")
	}
	last := len(m.hiddenItems) - 1
	m.unhideItemColumn(m.hiddenItems[last])
	m.hiddenItems = m.hiddenItems[:last]
}

// HiddenItemsEmpty reports whether the hidden-item stack is empty.
func (m *Matrix) HiddenItemsEmpty() bool {
	return len(m.hiddenItems) == 0
}

// HiddenItems returns the hidden items, oldest-hidden first.
func (m *Matrix) HiddenItems() []Type {
	out := make([]Type, 0, len(m.hiddenItems))
	for _, idx := range m.hiddenItems {
		out = append(out, m.itemTable[idx].Name)
	}
	return out
}

// NumHiddenItems reports how many items are currently hidden.
func (m *Matrix) NumHiddenItems() int {
	return len(m.hiddenItems)
}

// ResetItems unhides every hidden item, restoring the full item set.
func (m *Matrix) ResetItems() {
	for len(m.hiddenItems) > 0 {
		m.PopHiddenItem()
	}
}

// HideOption removes a single option from play, pushing it onto the
// hidden-option stack. Reports false if the option is unknown or already
// hidden.
func (m *Matrix) HideOption(option Type) bool {
	idx := m.findOptionIndex(option)
	if idx == 0 || m.links[idx].Tag == hiddenTag {
		return false
	}
	m.hiddenOptions = append(m.hiddenOptions, idx)
	m.hideOptionRow(idx)
	return true
}

// HideOptions hides every option in options, reporting whether all of them
// were hidden successfully.
func (m *Matrix) HideOptions(options []Type) bool {
	ok := true
	for _, t := range options {
		if !m.HideOption(t) {
			ok = false
		}
	}
	return ok
}

// HideOptionsReporting hides every option in options like HideOptions,
// additionally collecting the ones that failed to hide.
func (m *Matrix) HideOptionsReporting(options []Type) (ok bool, failed []Type) {
	ok = true
	for _, t := range options {
		if !m.HideOption(t) {
			ok = false
			failed = append(failed, t)
		}
	}
	return ok, failed
}

// HideAllOptionsExcept hides every in-play option not named in keep.
func (m *Matrix) HideAllOptionsExcept(keep map[Type]bool) {
	for i := len(m.itemTable); i < len(m.links)-1; i = m.links[i].Down + 1 {
		if m.links[i].Tag != hiddenTag && !keep[m.optionTable[-m.links[i].TopOrLen].Name] {
			m.hiddenOptions = append(m.hiddenOptions, i)
			m.hideOptionRow(i)
		}
	}
}

// HasOption reports whether option is known and currently in play.
func (m *Matrix) HasOption(option Type) bool {
	idx := m.findOptionIndex(option)
	return idx != 0 && m.links[idx].Tag != hiddenTag
}

// PeekHiddenOption returns the most recently hidden option without popping
// it. It panics if no options are hidden.
func (m *Matrix) PeekHiddenOption() Type {
	if len(m.hiddenOptions) == 0 {
		panic("pokelinks: peek on empty hidden-option stack")
	}
	idx := m.hiddenOptions[len(m.hiddenOptions)-1]
	top := m.links[idx].TopOrLen
	if top < 0 {
		top = -top
	}
	return m.optionTable[top].Name
}

// PopHiddenOption unhides the most recently hidden option and pops the
// stack. It panics on an empty stack; see PeekHiddenOption.
func (m *Matrix) PopHiddenOption() {
	if len(m.hiddenOptions) == 0 {
		panic("pokelinks: pop on empty hidden-option stack")
	}
	last := len(m.hiddenOptions) - 1
	m.unhideOptionRow(m.hiddenOptions[last])
	m.hiddenOptions = m.hiddenOptions[:last]
}

// HiddenOptionsEmpty reports whether the hidden-option stack is empty.
func (m *Matrix) HiddenOptionsEmpty() bool {
	return len(m.hiddenOptions) == 0
}

// HiddenOptions returns the hidden options, oldest-hidden first.
func (m *Matrix) HiddenOptions() []Type {
	out := make([]Type, 0, len(m.hiddenOptions))
	for _, idx := range m.hiddenOptions {
		top := m.links[idx].TopOrLen
		if top < 0 {
			top = -top
		}
		out = append(out, m.optionTable[top].Name)
	}
	return out
}

// NumHiddenOptions reports how many options are currently hidden.
func (m *Matrix) NumHiddenOptions() int {
	return len(m.hiddenOptions)
}

// ResetOptions unhides every hidden option, restoring the full option set.
func (m *Matrix) ResetOptions() {
	for len(m.hiddenOptions) > 0 {
		m.PopHiddenOption()
	}
}

// ResetAll unhides every hidden item and option.
func (m *Matrix) ResetAll() {
	m.ResetItems()
	m.ResetOptions()
}
