/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package libdivsufsort

import (
	"fmt"
	"time"
)

const (
	EVT_BSTAR_START    = 0
	EVT_BSTAR_END      = 1
	EVT_INDUCE_START   = 2
	EVT_INDUCE_END     = 3
	EVT_BWT_START      = 4
	EVT_BWT_END        = 5
	EVT_UNBWT_START    = 6
	EVT_UNBWT_END      = 7
	EVT_SUFCHECK_START = 8
	EVT_SUFCHECK_END   = 9
)

// Event is a lifecycle notification emitted by the engine at the
// milestones above. It carries no payload beyond its type, size, timing and
// an optional message: the engine calls a Listener inline, so a Listener
// must not mutate engine-owned state.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

func NewEvent(evtType int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, eventTime: evtTime}
}

func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

func (this *Event) Type() int          { return this.eventType }
func (this *Event) Size() int64        { return this.size }
func (this *Event) Time() time.Time    { return this.eventTime }

func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EVT_BSTAR_START:
		t = "BSTAR_START"
	case EVT_BSTAR_END:
		t = "BSTAR_END"
	case EVT_INDUCE_START:
		t = "INDUCE_START"
	case EVT_INDUCE_END:
		t = "INDUCE_END"
	case EVT_BWT_START:
		t = "BWT_START"
	case EVT_BWT_END:
		t = "BWT_END"
	case EVT_UNBWT_START:
		t = "UNBWT_START"
	case EVT_UNBWT_END:
		t = "UNBWT_END"
	case EVT_SUFCHECK_START:
		t = "SUFCHECK_START"
	case EVT_SUFCHECK_END:
		t = "SUFCHECK_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"time\":%d }", t, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener receives Event notifications. ProcessEvent must return quickly:
// the engine is synchronous and single-threaded end to end (see §5 of the
// design notes) and calls Listener.ProcessEvent inline on its own goroutine.
type Listener interface {
	ProcessEvent(evt *Event)
}
