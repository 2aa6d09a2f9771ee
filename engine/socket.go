package engine

import "net"

// bind opens the local UDP socket a scan sends probes from and receives
// responses on. Per §6, source port 500 is bound explicitly since IKE
// responders commonly expect it; the address family is picked from
// whether target is an IPv4 or IPv6 address.
func bind(target net.IP) (*net.UDPConn, error) {
	network := "udp4"
	local := &net.UDPAddr{IP: net.IPv4zero, Port: 500}
	if target.To4() == nil {
		network = "udp6"
		local = &net.UDPAddr{IP: net.IPv6zero, Port: 500}
	}

	conn, err := net.ListenUDP(network, local)
	if err != nil {
		return nil, newCouldNotBindError(err)
	}
	return conn, nil
}
