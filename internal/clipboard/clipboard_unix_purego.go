//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	backend  *x11Clipboard
)

// Without cgo the clipboard is served by owning the X11 CLIPBOARD selection
// directly and answering conversion requests from other clients.
func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		clip := &x11Clipboard{}
		if err := clip.initialize(); err != nil {
			initErr = err
			return
		}
		backend = clip
	})
	return initErr
}

func writePNG(data []byte) error { return backend.publish(nil, data) }

func writeText(data []byte) error { return backend.publish(data, nil) }

type x11Clipboard struct {
	conn      *xgb.Conn
	window    xproto.Window
	atoms     atomSet
	mu        sync.RWMutex
	textData  []byte
	imageData []byte
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	png       xproto.Atom
}

func (c *x11Clipboard) initialize() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	c.conn = conn
	c.window = window
	c.atoms = atoms
	go c.eventLoop()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	get := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, err
		}
		return reply.Atom, nil
	}
	clipboard, err := get("CLIPBOARD")
	if err != nil {
		return atomSet{}, err
	}
	targets, err := get("TARGETS")
	if err != nil {
		return atomSet{}, err
	}
	utf8, err := get("UTF8_STRING")
	if err != nil {
		return atomSet{}, err
	}
	textPlain, err := get("text/plain;charset=utf-8")
	if err != nil {
		return atomSet{}, err
	}
	png, err := get("image/png")
	if err != nil {
		return atomSet{}, err
	}
	return atomSet{clipboard: clipboard, targets: targets, utf8: utf8, textPlain: textPlain, png: png}, nil
}

// publish replaces the offered data; exactly one of text and img is set.
func (c *x11Clipboard) publish(text, img []byte) error {
	c.mu.Lock()
	c.textData = append([]byte(nil), text...)
	c.imageData = append([]byte(nil), img...)
	c.mu.Unlock()
	return c.setSelectionOwner()
}

func (c *x11Clipboard) setSelectionOwner() error {
	return xproto.SetSelectionOwnerChecked(c.conn, c.window, c.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (c *x11Clipboard) eventLoop() {
	for {
		ev, err := c.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			c.reply(e)
		case xproto.SelectionClearEvent:
			// another client owns the clipboard now
			c.mu.Lock()
			c.textData, c.imageData = nil, nil
			c.mu.Unlock()
		}
	}
}

// offer returns the property contents for a conversion target.
func (c *x11Clipboard) offer(target xproto.Atom) (typ xproto.Atom, format byte, payload []byte, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch target {
	case c.atoms.targets:
		list := []xproto.Atom{c.atoms.targets}
		if len(c.textData) > 0 {
			list = append(list, c.atoms.utf8, xproto.AtomString, c.atoms.textPlain)
		}
		if len(c.imageData) > 0 {
			list = append(list, c.atoms.png)
		}
		return xproto.AtomAtom, 32, atomsToBytes(list), true
	case c.atoms.utf8, xproto.AtomString, c.atoms.textPlain:
		return c.atoms.utf8, 8, c.textData, len(c.textData) > 0
	case c.atoms.png:
		return c.atoms.png, 8, c.imageData, len(c.imageData) > 0
	}
	return 0, 0, nil, false
}

func (c *x11Clipboard) reply(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	if typ, format, payload, ok := c.offer(e.Target); ok {
		units := uint32(len(payload)) / uint32(format/8)
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, typ, format, units, payload)
	} else {
		property = xproto.AtomNone
	}
	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(c.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}
